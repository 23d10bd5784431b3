package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/logging"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/store"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/utils"
	"github.com/pquerna/otp/totp"
)

const totpIssuer = "Smart Inventory"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactive           = errors.New("account is inactive")
	ErrTOTPRequired       = errors.New("authenticator code required")
	ErrInvalidTOTP        = errors.New("invalid authenticator code")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// LoginResult carries the signed token alongside the new session
type LoginResult struct {
	Session   Session
	Token     string
	ExpiresAt time.Time
}

// Provider signs members in with bcrypt passwords, an optional TOTP code and HS256 tokens
type Provider struct {
	users  store.UserRepository
	secret string
	ttl    time.Duration
	now    func() time.Time
}

func NewProvider(users store.UserRepository, secret string, ttl time.Duration) *Provider {
	return &Provider{users: users, secret: secret, ttl: ttl, now: time.Now}
}

// TTL is how long issued tokens stay valid
func (p *Provider) TTL() time.Duration { return p.ttl }

// Login checks credentials and issues a token. Unknown emails and wrong passwords
// report the same error.
func (p *Provider) Login(ctx context.Context, email, password, totpCode string) (LoginResult, error) {
	user, err := p.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, fmt.Errorf("look up account: %w", err)
	}

	if user.PasswordHash == "" || utils.ComparePassword(user.PasswordHash, password) != nil {
		return LoginResult{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return LoginResult{}, ErrInactive
	}
	if user.TOTPSecret != "" {
		if totpCode == "" {
			return LoginResult{}, ErrTOTPRequired
		}
		if !totp.Validate(totpCode, user.TOTPSecret) {
			return LoginResult{}, ErrInvalidTOTP
		}
	}

	now := p.now()
	token, err := utils.GenerateToken(p.secret, p.ttl, user.ID, user.Email, user.Role)
	if err != nil {
		return LoginResult{}, err
	}

	if err := p.users.RecordLogin(ctx, user.ID, now); err != nil {
		logging.Error("record login failed", err, logging.Fields{"user_id": user.ID})
	} else {
		user.LastLoginDate = &now
	}

	return LoginResult{
		Session:   Authenticated(MemberFromUser(user)),
		Token:     token,
		ExpiresAt: now.Add(p.ttl),
	}, nil
}

// Logout returns the visitor session; the token cookie is cleared by the caller
func (p *Provider) Logout() Session {
	return Anonymous()
}

// Resolve turns a token into a session, re-reading the account so deactivation takes effect
func (p *Provider) Resolve(ctx context.Context, token string) (Session, error) {
	if token == "" {
		return Anonymous(), ErrInvalidToken
	}
	claims, err := utils.VerifyToken(p.secret, token)
	if err != nil {
		return Anonymous(), fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	user, err := p.users.FindByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Anonymous(), ErrInvalidToken
		}
		return Anonymous(), fmt.Errorf("look up account: %w", err)
	}
	if user.ID != claims.ID {
		return Anonymous(), ErrInvalidToken
	}
	if !user.IsActive {
		return Anonymous(), ErrInactive
	}
	return Authenticated(MemberFromUser(user)), nil
}

// GenerateTOTPSecret creates an authenticator secret and its otpauth:// URL for email
func GenerateTOTPSecret(email string) (secret, url string, err error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: email,
	})
	if err != nil {
		return "", "", fmt.Errorf("generate totp secret: %w", err)
	}
	return key.Secret(), key.URL(), nil
}
