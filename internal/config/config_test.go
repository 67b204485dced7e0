package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.HTTP.Port != "8080" {
		t.Fatalf("unexpected default port: %s", cfg.HTTP.Port)
	}
	if cfg.Context.RequestTimeout != 5*time.Second {
		t.Fatalf("unexpected request timeout: %v", cfg.Context.RequestTimeout)
	}
	if !cfg.Migrations.Enabled {
		t.Fatal("migrations should default to enabled")
	}
	if cfg.Database.URL == "" {
		t.Fatal("database url should be derived from defaults")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("DATABASE_URL", "postgres://override/db")
	t.Setenv("SYNC_INTERVAL_SECONDS", "90")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.HTTP.Port != "9999" {
		t.Fatalf("expected overridden port, got %s", cfg.HTTP.Port)
	}
	if cfg.Database.URL != "postgres://override/db" {
		t.Fatalf("expected overridden url, got %s", cfg.Database.URL)
	}
	if cfg.Buffer.SyncInterval != 90*time.Second {
		t.Fatalf("expected 90s sync interval, got %v", cfg.Buffer.SyncInterval)
	}
	if cfg.Logger.Level != "debug" {
		t.Fatalf("expected debug level, got %s", cfg.Logger.Level)
	}
}

func TestAddress(t *testing.T) {
	cfg := &Config{HTTP: HTTPConfig{Host: "127.0.0.1", Port: "8080"}}
	if cfg.Address() != "127.0.0.1:8080" {
		t.Fatalf("unexpected address: %s", cfg.Address())
	}
}
