package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "JWT_EXPIRES_HOURS", "CATALOG_API_TIMEOUT_SECONDS", "CATALOG_CACHE_TTL_SECONDS", "SUPABASE_URL", "SUPABASE_KEY", "OTEL_ENABLED", "GO_ENV"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()

	assert.Equal(t, "5000", cfg.App.Port)
	assert.Equal(t, 24, cfg.Auth.JwtExpiresHour)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL())
	assert.Equal(t, 10*time.Second, cfg.CatalogAPI.Timeout())
	assert.Equal(t, 5*time.Minute, cfg.CatalogAPI.CacheDuration())
	assert.False(t, cfg.CatalogAPI.Enabled())
	assert.False(t, cfg.Tracing.Enabled)
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("GO_ENV", "production")
	t.Setenv("JWT_EXPIRES_HOURS", "not-a-number")
	t.Setenv("CATALOG_CACHE_TTL_SECONDS", "60")
	t.Setenv("SUPABASE_URL", "https://example.supabase.co")
	t.Setenv("SUPABASE_KEY", "anon")
	t.Setenv("OTEL_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, "8080", cfg.App.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 24, cfg.Auth.JwtExpiresHour, "malformed integers fall back")
	assert.Equal(t, time.Minute, cfg.CatalogAPI.CacheDuration())
	assert.True(t, cfg.CatalogAPI.Enabled())
	assert.True(t, cfg.Tracing.Enabled)
}
