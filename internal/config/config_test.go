package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, "ATHLETE_CATALOG_SOURCE", "ATHLETE_SUGGEST_LIMIT", "ATHLETE_CATALOG_TIMEOUT", "ATHLETE_LOG_LEVEL")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.CatalogTimeout != 10*time.Second {
		t.Fatalf("expected default catalog timeout 10s, got %s", cfg.CatalogTimeout)
	}
	if cfg.SuggestLimit != 0 || cfg.CatalogSource != "" {
		t.Fatalf("expected unset catalog settings, got %+v", cfg)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("expected warn log level, got %q", cfg.LogLevel)
	}
}

func TestLoadReadsEnvAndDotenv(t *testing.T) {
	dir := t.TempDir()
	dotenv := filepath.Join(dir, ".env")
	if err := os.WriteFile(dotenv, []byte("ATHLETE_CATALOG_SOURCE=/tmp/foods.json\nATHLETE_LOG_FORMAT=json\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("ATHLETE_SUGGEST_LIMIT", "5")
	t.Setenv("ATHLETE_CATALOG_TIMEOUT", "250ms")
	unsetEnv(t, "ATHLETE_CATALOG_SOURCE", "ATHLETE_LOG_FORMAT")

	cfg, err := Load(dotenv)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SuggestLimit != 5 {
		t.Fatalf("expected suggest limit 5, got %d", cfg.SuggestLimit)
	}
	if cfg.CatalogTimeout != 250*time.Millisecond {
		t.Fatalf("expected timeout 250ms, got %s", cfg.CatalogTimeout)
	}
	if cfg.CatalogSource != "/tmp/foods.json" {
		t.Fatalf("expected catalog source from .env, got %q", cfg.CatalogSource)
	}
	if cfg.LogFormat != "json" {
		t.Fatalf("expected json log format from .env, got %q", cfg.LogFormat)
	}
}

func TestLoadRejectsNegativeLimit(t *testing.T) {
	t.Setenv("ATHLETE_SUGGEST_LIMIT", "-1")
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatalf("expected negative suggest limit to fail")
	}
}

// unsetEnv clears keys for the test and restores them afterwards.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}
}
