package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	SiteName = "Learnpath"

	TailwindCSSURL = "https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css"
	HTMXURL        = "https://unpkg.com/htmx.org@1.9.10"

	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 10 * time.Second
	ServerRateLimitMax = 120
	// Fragment swaps come in bursts while a visitor browses one page
	FragmentRateLimitMax = 600
	ServerRateLimitExp   = 1 * time.Minute

	// ContentCacheTTL bounds how long provider content is served from cache.
	ContentCacheTTL = 10 * time.Minute

	BillingCookie = "billing_period"
)

// Config holds settings that may be overridden from the environment.
type Config struct {
	Port      string
	BaseURL   string
	LogLevel  string
	LogFormat string
	CatalogDB string
	RateLimit int
	CacheTTL  time.Duration
	EnvLoaded bool
}

// Load reads .env if present, then the process environment.
func Load() *Config {
	loaded := godotenv.Load() == nil

	cfg := &Config{
		Port:      getenv("PORT", "8080"),
		BaseURL:   getenv("BASE_URL", "https://learnpath.example"),
		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "console"),
		CatalogDB: os.Getenv("CATALOG_DB"),
		RateLimit: ServerRateLimitMax,
		CacheTTL:  ContentCacheTTL,
		EnvLoaded: loaded,
	}
	if v, err := strconv.Atoi(os.Getenv("RATE_LIMIT_MAX")); err == nil && v > 0 {
		cfg.RateLimit = v
	}
	if v, err := time.ParseDuration(os.Getenv("CACHE_TTL")); err == nil && v > 0 {
		cfg.CacheTTL = v
	}
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
