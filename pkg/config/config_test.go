package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("JWT_EXPIRES_IN", "")

	cfg := LoadConfig()

	assert.Equal(t, "5500", cfg.Port)
	assert.Equal(t, StoreBackendPostgres, cfg.StoreBackend)
	assert.Equal(t, "7d", cfg.JWTExpiresIn)
	assert.Equal(t, "INR", cfg.PaymentCurrency)
	assert.Same(t, cfg, AppConfig)
}

func TestValidate(t *testing.T) {
	cfg := &Config{StoreBackend: StoreBackendPostgres}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
	assert.Contains(t, err.Error(), "JWT_SECRET")

	cfg = &Config{StoreBackend: StoreBackendMemory, JWTSecret: "secret"}
	assert.NoError(t, cfg.Validate())

	cfg = &Config{StoreBackend: "mongo", JWTSecret: "secret"}
	assert.Error(t, cfg.Validate())
}

func TestSessionKeyFallsBackToJWTSecret(t *testing.T) {
	cfg := &Config{JWTSecret: "jwt"}
	assert.Equal(t, []byte("jwt"), cfg.SessionKey())

	cfg.SessionSecret = "cookie"
	assert.Equal(t, []byte("cookie"), cfg.SessionKey())
}
