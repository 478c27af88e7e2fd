package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SMTP_USERNAME", "owner@example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "587", cfg.SMTPPort)
	assert.Equal(t, 10*time.Second, cfg.SMTPTimeout)
	// From and To fall back to the SMTP login
	assert.Equal(t, "owner@example.com", cfg.SMTPFromEmail)
	assert.Equal(t, "owner@example.com", cfg.ContactEmailTo)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("SMTP_FROM_EMAIL", "noreply@example.com")
	t.Setenv("CONTACT_EMAIL_TO", "me@example.com")
	t.Setenv("SMTP_TIMEOUT_SECONDS", "3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://me.dev/, ,https://www.me.dev")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "noreply@example.com", cfg.SMTPFromEmail)
	assert.Equal(t, "me@example.com", cfg.ContactEmailTo)
	assert.Equal(t, 3*time.Second, cfg.SMTPTimeout)
	assert.Equal(t, []string{"https://me.dev", "https://www.me.dev"}, cfg.CORSAllowedOrigins)
}

func TestGetEnvIntInvalidFallsBack(t *testing.T) {
	t.Setenv("SOME_INT", "abc")
	assert.Equal(t, 7, getEnvInt("SOME_INT", 7))
}
