package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("ENV", "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, ":5000", cfg.Addr())
	assert.Equal(t, "meetingrooms.db", cfg.DatabaseURL)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "sid", cfg.CookieName)
	assert.Equal(t, []string{"http://localhost:5000"}, cfg.CORSOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestFromEnv_ProductionRejectsDefaultSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("SESSION_SECRET", "")

	_, err := FromEnv()
	assert.ErrorContains(t, err, "SESSION_SECRET")
}

func TestFromEnv_ProductionRequiresSecureCookie(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("SESSION_SECRET", "a-real-secret")
	t.Setenv("COOKIE_SECURE", "false")

	_, err := FromEnv()
	assert.ErrorContains(t, err, "COOKIE_SECURE")
}

func TestFromEnv_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"SESSION_TTL":     "forever",
		"REDIS_DB":        "zero",
		"COOKIE_SAMESITE": "Sometimes",
		"APP_TIMEZONE":    "Mars/Olympus",
	}
	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(name, value)
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("APP_TIMEZONE", "UTC")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, time.UTC, cfg.Location)
}
