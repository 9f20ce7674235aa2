package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("load or create: %v", err)
	}
	if cfg.DBPath != DefaultDBName {
		t.Fatalf("db path = %q, want %q", cfg.DBPath, DefaultDBName)
	}
	if cfg.Keys.Quit != "q" || cfg.Keys.Toggle != " " {
		t.Fatalf("unexpected default keys: %+v", cfg.Keys)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file written: %v", err)
	}
}

func TestLoadOrCreateReadsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := "db_path = \"custom.db\"\ndefault_period = \"weeks\"\n\n[keys]\nquit = \"x\"\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "custom.db" {
		t.Fatalf("db path = %q, want custom.db", cfg.DBPath)
	}
	if cfg.DefaultPeriod != "weeks" {
		t.Fatalf("default period = %q, want weeks", cfg.DefaultPeriod)
	}
	if cfg.Keys.Quit != "x" {
		t.Fatalf("quit key = %q, want x", cfg.Keys.Quit)
	}
}

func TestLoadOrCreateFillsEmptyFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("db_path = \"\"\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != DefaultDBName {
		t.Fatalf("empty db path must fall back, got %q", cfg.DBPath)
	}
	if cfg.DefaultPeriod != "days" {
		t.Fatalf("empty period must fall back, got %q", cfg.DefaultPeriod)
	}
}
