// Package config loads and saves budgetflow configuration: a TOML file in
// the XDG config dir with BUDGETFLOW_* environment overrides on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/shopspring/decimal"
)

// Config holds all budgetflow configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Overdraft  OverdraftConfig  `toml:"overdraft"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DataDir string `toml:"data_dir,omitempty" env:"BUDGETFLOW_DATA_DIR"`
}

// OverdraftConfig holds the overdraft allowance settings.
type OverdraftConfig struct {
	Enabled bool            `toml:"enabled" env:"BUDGETFLOW_OVERDRAFT_ENABLED"`
	Limit   decimal.Decimal `toml:"limit" env:"BUDGETFLOW_OVERDRAFT_LIMIT"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme" env:"BUDGETFLOW_THEME"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "budgetflow")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "budgetflow")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist,
// then applies environment overrides.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	} else if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("applying env overrides: %w", err)
	}

	if cfg.Overdraft.Limit.IsNegative() {
		return cfg, fmt.Errorf("overdraft limit must not be negative, got %s", cfg.Overdraft.Limit)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
