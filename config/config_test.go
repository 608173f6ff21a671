package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "BASE_URL", "LOG_LEVEL", "LOG_FORMAT", "CATALOG_DB", "RATE_LIMIT_MAX", "CACHE_TTL"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Empty(t, cfg.CatalogDB)
	assert.Equal(t, ServerRateLimitMax, cfg.RateLimit)
	assert.Equal(t, ContentCacheTTL, cfg.CacheTTL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("CATALOG_DB", "catalog.db")
	t.Setenv("RATE_LIMIT_MAX", "30")
	t.Setenv("CACHE_TTL", "30s")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "catalog.db", cfg.CatalogDB)
	assert.Equal(t, 30, cfg.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
}

func TestLoadIgnoresBadNumbers(t *testing.T) {
	t.Setenv("RATE_LIMIT_MAX", "-5")
	t.Setenv("CACHE_TTL", "soon")

	cfg := Load()
	assert.Equal(t, ServerRateLimitMax, cfg.RateLimit)
	assert.Equal(t, ContentCacheTTL, cfg.CacheTTL)
}
