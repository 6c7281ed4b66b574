// Package config loads application configuration from environment
// variables, with development-friendly defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// SeedDemo fills the store with sample content at startup.
	SeedDemo bool

	MetricsEnabled bool
	MetricsToken   string

	// Sliding-window rate limit for admin mutation routes.
	RateLimit         int
	RateWindowSeconds int
}

func Load() *Config {
	return &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "3000"),
		Env:  envOrDefault("APP_ENV", "development"),

		SeedDemo: envBool("SEED_DEMO", true),

		MetricsEnabled: envBool("METRICS_ENABLED", false),
		MetricsToken:   os.Getenv("METRICS_TOKEN"),

		RateLimit:         envInt("RATE_LIMIT", 60),
		RateWindowSeconds: envInt("RATE_WINDOW_SECONDS", 60),
	}
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
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
