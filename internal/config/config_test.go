package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("GOOGLE_CLIENT_ID", "client-id")
	t.Setenv("DIRECTORY_BASE_URL", "https://dir.example")
	t.Setenv("DIRECTORY_PUBLIC_KEY", "pub")
	t.Setenv("DIRECTORY_PRIVATE_KEY", "priv")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoad_MissingRequiredKeys(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "5000", cfg.AppPort)
	assert.Equal(t, 5*time.Minute, cfg.OTPTTL)
	assert.Equal(t, 5*time.Second, cfg.OTPVerifyDelay)
	assert.Equal(t, 7*24*time.Hour, cfg.JWTExpiry)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_PORT", "8080")
	t.Setenv("OTP_TTL_MINUTES", "10")
	t.Setenv("OTP_VERIFY_DELAY_SECONDS", "2")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, 10*time.Minute, cfg.OTPTTL)
	assert.Equal(t, 2*time.Second, cfg.OTPVerifyDelay)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}
