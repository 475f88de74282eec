// Package config collects the environment settings the server needs at
// startup. A .env file is honored when present so local runs do not need a
// wrapper script.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/rgarza/folio/internal/assist"
	"github.com/rgarza/folio/internal/core"
)

type Config struct {
	Addr        string
	DatabaseURL string
	StaticDir   string

	Session       core.SessionConfig
	SessionCache  core.CacheConfig
	SweepInterval time.Duration

	Assist assist.Config
}

// Load reads configuration from the environment, after a best-effort .env
// load. Missing values fall back to development defaults; DATABASE_URL has no
// default and stays empty when unset.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:        envOr("HTTP_ADDR", ":3000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		StaticDir:   envOr("STATIC_DIR", "./public"),

		Session: core.SessionConfig{
			MaxAge: envDuration("SESSION_MAX_AGE", core.DefaultSessionConfig().MaxAge),
		},
		SessionCache: core.CacheConfig{
			TTL:     envDuration("SESSION_CACHE_TTL", 5*time.Minute),
			MaxSize: envInt("SESSION_CACHE_MAX_SIZE", 1000),
		},
		SweepInterval: envDuration("SESSION_SWEEP_INTERVAL", 15*time.Minute),

		Assist: assist.Config{
			BaseURL: os.Getenv("AI_BASE_URL"),
			APIKey:  os.Getenv("AI_API_KEY"),
			Model:   os.Getenv("AI_MODEL"),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
