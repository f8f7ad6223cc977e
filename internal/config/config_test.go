package config

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("default theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
	if cfg.Overdraft.Enabled {
		t.Fatal("overdraft enabled by default, want disabled")
	}
	if !cfg.Overdraft.Limit.IsZero() {
		t.Fatalf("default overdraft limit = %s, want 0", cfg.Overdraft.Limit)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Overdraft.Enabled = true
	cfg.Overdraft.Limit = decimal.RequireFromString("300.00")
	cfg.Appearance.Theme = "tokyo-night"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !loaded.Overdraft.Enabled {
		t.Fatal("overdraft enabled flag lost in round trip")
	}
	if !loaded.Overdraft.Limit.Equal(decimal.RequireFromString("300.00")) {
		t.Fatalf("overdraft limit = %s, want 300.00", loaded.Overdraft.Limit)
	}
	if loaded.Appearance.Theme != "tokyo-night" {
		t.Fatalf("theme = %q, want tokyo-night", loaded.Appearance.Theme)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("BUDGETFLOW_OVERDRAFT_ENABLED", "true")
	t.Setenv("BUDGETFLOW_OVERDRAFT_LIMIT", "150.50")
	t.Setenv("BUDGETFLOW_THEME", "terminal")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Overdraft.Enabled {
		t.Fatal("env override did not enable overdraft")
	}
	if !cfg.Overdraft.Limit.Equal(decimal.RequireFromString("150.50")) {
		t.Fatalf("overdraft limit = %s, want 150.50", cfg.Overdraft.Limit)
	}
	if cfg.Appearance.Theme != "terminal" {
		t.Fatalf("theme = %q, want terminal", cfg.Appearance.Theme)
	}
}

func TestLoadRejectsNegativeLimit(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("BUDGETFLOW_OVERDRAFT_LIMIT", "-10.00")

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted a negative overdraft limit")
	}
}
