// Package config loads ~/.punch/config.yaml. Every field is optional; the
// built-in defaults work with no file present.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for punch.
type Config struct {
	// DataDir holds the SQLite database. Empty means ~/.punch.
	DataDir string `yaml:"data_dir"`
	// HistoryCap bounds the stored session history (most recent first).
	HistoryCap int `yaml:"history_cap"`
	// WeekStartsOn picks the first day of "this week": "monday" or "sunday".
	WeekStartsOn string `yaml:"week_starts_on"`
	// RetryAttempts and RetryDelayMS bound storage write retries.
	RetryAttempts int `yaml:"retry_attempts"`
	RetryDelayMS  int `yaml:"retry_delay_ms"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		HistoryCap:    100,
		WeekStartsOn:  "monday",
		RetryAttempts: 2,
		RetryDelayMS:  500,
	}
}

// Load reads the config file, falling back to defaults when it is absent.
// A malformed file returns defaults alongside the parse error so the caller
// can warn without aborting.
func Load() (Config, error) {
	dir, err := baseDir()
	if err != nil {
		return Default(), err
	}
	return loadFrom(filepath.Join(dir, "config.yaml"), dir)
}

func loadFrom(path, dir string) (Config, error) {
	cfg := Default()
	cfg.DataDir = dir

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}

	// Back-fill zero values so a partial file still yields a usable config.
	if cfg.DataDir == "" {
		cfg.DataDir = dir
	}
	if cfg.HistoryCap <= 0 {
		cfg.HistoryCap = Default().HistoryCap
	}
	if cfg.WeekStartsOn == "" {
		cfg.WeekStartsOn = Default().WeekStartsOn
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = Default().RetryAttempts
	}
	if cfg.RetryDelayMS <= 0 {
		cfg.RetryDelayMS = Default().RetryDelayMS
	}
	return cfg, nil
}

// DatabasePath returns the SQLite file location inside the data directory.
func (c Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "punch.db")
}

// WeekStart maps the configured convention to a weekday. Anything other
// than "sunday" means Monday.
func (c Config) WeekStart() time.Weekday {
	if c.WeekStartsOn == "sunday" {
		return time.Sunday
	}
	return time.Monday
}

// RetryDelay returns the configured backoff as a duration.
func (c Config) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelayMS) * time.Millisecond
}

func baseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".punch"), nil
}
