// Package config loads solvent configuration from a TOML file with
// defaults and environment variable overrides.
//
// The file lives at ~/.solvent/config.toml; a missing file means
// defaults. Environment variables take precedence over the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the complete solvent configuration.
type Config struct {
	// BaseURL is the solver backend address.
	BaseURL string `toml:"base_url"`
	// RequestTimeoutSecs bounds non-streaming requests.
	RequestTimeoutSecs int `toml:"request_timeout_secs"`
	// StreamTimeoutSecs bounds one streaming session end to end.
	// Zero disables the bound.
	StreamTimeoutSecs int `toml:"stream_timeout_secs"`
	// MaxRetries is how many times a transient request failure is
	// retried.
	MaxRetries int `toml:"max_retries"`
	// HistoryDir is where solved problems are stored. Empty means
	// ~/.solvent/history.
	HistoryDir string `toml:"history_dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BaseURL:            "http://localhost:3001",
		RequestTimeoutSecs: 60,
		StreamTimeoutSecs:  300,
		MaxRetries:         2,
	}
}

// Path returns the default config file location.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: %w", err)
	}
	return filepath.Join(home, ".solvent", "config.toml"), nil
}

// Load reads the config file at path, layering it over defaults and
// applying environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	applyEnv(&cfg)
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overrides file values from the environment.
func applyEnv(cfg *Config) {
	if v := os.Getenv("SOLVENT_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("SOLVENT_HISTORY_DIR"); v != "" {
		cfg.HistoryDir = v
	}
	if v := os.Getenv("SOLVENT_STREAM_TIMEOUT_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.StreamTimeoutSecs = n
		}
	}
}

func (c Config) validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("config: base_url must not be empty")
	}
	if c.RequestTimeoutSecs <= 0 {
		return fmt.Errorf("config: request_timeout_secs must be positive")
	}
	if c.StreamTimeoutSecs < 0 {
		return fmt.Errorf("config: stream_timeout_secs must not be negative")
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("config: max_retries must not be negative")
	}
	return nil
}

// RequestTimeout returns RequestTimeoutSecs as a duration.
func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSecs) * time.Second
}

// StreamTimeout returns StreamTimeoutSecs as a duration; zero means no
// bound.
func (c Config) StreamTimeout() time.Duration {
	return time.Duration(c.StreamTimeoutSecs) * time.Second
}

// HistoryPath resolves the history directory, defaulting to
// ~/.solvent/history.
func (c Config) HistoryPath() (string, error) {
	if c.HistoryDir != "" {
		return c.HistoryDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: %w", err)
	}
	return filepath.Join(home, ".solvent", "history"), nil
}
