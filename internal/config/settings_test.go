package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Backend() != "file" {
		t.Fatalf("backend = %q, want file", cfg.Backend())
	}
	if cfg.LogLevel() != "info" {
		t.Fatalf("level = %q, want info", cfg.LogLevel())
	}
	if cfg.DoublePressInterval() != 300*time.Millisecond {
		t.Fatalf("double press = %v", cfg.DoublePressInterval())
	}
	if cfg.SettleDuration() != 200*time.Millisecond {
		t.Fatalf("settle = %v", cfg.SettleDuration())
	}
	if cfg.NewNoteName() != "" {
		t.Fatalf("new note name = %q, want empty", cfg.NewNoteName())
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[store]
backend = "bbolt"

[logging]
level = "debug"

[ui]
double_press_ms = 450
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := loadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend() != "bbolt" {
		t.Fatalf("backend = %q, want bbolt", cfg.Backend())
	}
	if cfg.LogLevel() != "debug" {
		t.Fatalf("level = %q, want debug", cfg.LogLevel())
	}
	if cfg.DoublePressInterval() != 450*time.Millisecond {
		t.Fatalf("double press = %v", cfg.DoublePressInterval())
	}
	// Keys absent from the file keep their defaults.
	if cfg.SettleDuration() != 200*time.Millisecond {
		t.Fatalf("settle = %v, want default", cfg.SettleDuration())
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadFromPath(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend() != "file" || cfg.LogLevel() != "info" {
		t.Fatalf("missing file should yield defaults: %+v", cfg)
	}
}
