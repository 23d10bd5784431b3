package session

import (
	"context"
	"testing"
	"time"

	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/models"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/store"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/utils"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProvider(t *testing.T, users ...models.User) (*Provider, store.UserRepository) {
	t.Helper()
	repos := store.NewMemoryRepositories()
	for _, u := range users {
		_, err := repos.Users.Create(context.Background(), u)
		require.NoError(t, err)
	}
	return NewProvider(repos.Users, "test-secret", time.Hour), repos.Users
}

func account(t *testing.T, id, email, password string) models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return models.User{ID: id, Email: email, PasswordHash: hash, Role: models.RoleManager, FirstName: "Ada", IsActive: true}
}

func TestLoginIssuesTokenAndRecordsLogin(t *testing.T) {
	ctx := context.Background()
	provider, users := newProvider(t, account(t, "u1", "ada@example.com", "password1"))
	fixed := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	provider.now = func() time.Time { return fixed }

	result, err := provider.Login(ctx, "ada@example.com", "password1", "")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.True(t, result.Session.IsAuthenticated)
	assert.Equal(t, "u1", result.Session.Member.ID)
	require.NotNil(t, result.Session.Member.LastLoginDate)
	assert.Equal(t, fixed, *result.Session.Member.LastLoginDate)

	stored, err := users.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored.LastLoginDate)
	assert.Equal(t, fixed, *stored.LastLoginDate)

	resolved, err := provider.Resolve(ctx, result.Token)
	require.NoError(t, err)
	assert.True(t, resolved.IsAuthenticated)
	assert.Equal(t, "ada@example.com", resolved.Member.Email)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	provider, _ := newProvider(t, account(t, "u1", "ada@example.com", "password1"))

	_, err := provider.Login(context.Background(), "ada@example.com", "wrong", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = provider.Login(context.Background(), "nobody@example.com", "password1", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsInactiveMember(t *testing.T) {
	user := account(t, "u1", "ada@example.com", "password1")
	user.IsActive = false
	provider, _ := newProvider(t, user)

	_, err := provider.Login(context.Background(), "ada@example.com", "password1", "")
	assert.ErrorIs(t, err, ErrInactive)
}

func TestLoginWithTOTP(t *testing.T) {
	secret, url, err := GenerateTOTPSecret("ada@example.com")
	require.NoError(t, err)
	assert.Contains(t, url, "otpauth://")

	user := account(t, "u1", "ada@example.com", "password1")
	user.TOTPSecret = secret
	provider, _ := newProvider(t, user)
	ctx := context.Background()

	_, err = provider.Login(ctx, "ada@example.com", "password1", "")
	assert.ErrorIs(t, err, ErrTOTPRequired)

	_, err = provider.Login(ctx, "ada@example.com", "password1", "000000x")
	assert.ErrorIs(t, err, ErrInvalidTOTP)

	code, err := totp.GenerateCode(secret, time.Now())
	require.NoError(t, err)
	result, err := provider.Login(ctx, "ada@example.com", "password1", code)
	require.NoError(t, err)
	assert.True(t, result.Session.IsAuthenticated)
}

func TestResolveRejectsBadTokens(t *testing.T) {
	ctx := context.Background()
	provider, users := newProvider(t, account(t, "u1", "ada@example.com", "password1"))

	_, err := provider.Resolve(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = provider.Resolve(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	foreign, err := utils.GenerateToken("other-secret", time.Hour, "u1", "ada@example.com", models.RoleManager)
	require.NoError(t, err)
	_, err = provider.Resolve(ctx, foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)

	result, err := provider.Login(ctx, "ada@example.com", "password1", "")
	require.NoError(t, err)
	require.NoError(t, users.Delete(ctx, "u1"))
	_, err = provider.Resolve(ctx, result.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutIsAnonymous(t *testing.T) {
	provider, _ := newProvider(t)
	s := provider.Logout()
	assert.False(t, s.IsAuthenticated)
	assert.Nil(t, s.Member)
}
