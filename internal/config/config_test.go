package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"APP_HOST", "APP_PORT", "APP_ENV",
		"SEED_DEMO", "METRICS_ENABLED", "METRICS_TOKEN",
		"RATE_LIMIT", "RATE_WINDOW_SECONDS",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()

	if cfg.Addr() != "0.0.0.0:3000" {
		t.Fatalf("addr=%q", cfg.Addr())
	}
	if !cfg.IsDev() {
		t.Fatalf("default env is not development")
	}
	if !cfg.SeedDemo {
		t.Fatalf("demo seed disabled by default")
	}
	if cfg.MetricsEnabled {
		t.Fatalf("metrics enabled by default")
	}
	if cfg.RateLimit != 60 || cfg.RateWindowSeconds != 60 {
		t.Fatalf("rate limit defaults: %d/%ds", cfg.RateLimit, cfg.RateWindowSeconds)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SEED_DEMO", "false")
	t.Setenv("METRICS_ENABLED", "true")
	t.Setenv("RATE_LIMIT", "5")

	cfg := Load()

	if cfg.Addr() != "127.0.0.1:8080" {
		t.Fatalf("addr=%q", cfg.Addr())
	}
	if cfg.IsDev() {
		t.Fatalf("production reported as development")
	}
	if cfg.SeedDemo {
		t.Fatalf("seed not disabled")
	}
	if !cfg.MetricsEnabled {
		t.Fatalf("metrics not enabled")
	}
	if cfg.RateLimit != 5 {
		t.Fatalf("rate limit=%d", cfg.RateLimit)
	}
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("SEED_DEMO", "definitely")
	t.Setenv("RATE_LIMIT", "lots")

	cfg := Load()

	if !cfg.SeedDemo {
		t.Fatalf("unparseable bool did not fall back")
	}
	if cfg.RateLimit != 60 {
		t.Fatalf("unparseable int did not fall back")
	}
}
