// Package config loads scicalc's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/zephyrtronium/scicalc"
)

// Config holds the complete application configuration.
type Config struct {
	Display DisplayConfig `toml:"display"`
	History HistoryConfig `toml:"history"`
	Eval    EvalConfig    `toml:"eval"`
}

// DisplayConfig holds answer formatting settings.
type DisplayConfig struct {
	// MaxDigits is the digits argument to Number.Format.
	MaxDigits int `toml:"max_digits"`
}

// HistoryConfig holds history store settings.
type HistoryConfig struct {
	// Path is the SQLite database file. The empty string or ":memory:" keeps
	// history in memory only.
	Path       string `toml:"path"`
	MaxEntries int    `toml:"max_entries"`
}

// EvalConfig holds evaluator settings.
type EvalConfig struct {
	// Power is "legacy" or "exact".
	Power       string `toml:"power"`
	SkipInvalid bool   `toml:"skip_invalid"`
}

const (
	PowerLegacy = "legacy"
	PowerExact  = "exact"
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	cfg.expandEnvVars()
	return &cfg
}

// Load loads configuration from a TOML file.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	cfg.expandEnvVars()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from the file named by SCICALC_CONFIG, or
// else from the first default location that exists. If there is no file at
// all, it returns Default().
func LoadFromEnv() (*Config, error) {
	path := os.Getenv("SCICALC_CONFIG")
	if path == "" {
		for _, p := range defaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func defaultPaths() []string {
	return []string{
		"./scicalc.toml",
		filepath.Join(os.Getenv("HOME"), ".config/scicalc/config.toml"),
	}
}

// applyDefaults sets default values for missing configuration.
func (c *Config) applyDefaults() {
	if c.Display.MaxDigits == 0 {
		c.Display.MaxDigits = 12
	}
	if c.History.Path == "" {
		c.History.Path = "$HOME/.local/share/scicalc/history.db"
	}
	if c.History.MaxEntries == 0 {
		c.History.MaxEntries = 50
	}
	if c.Eval.Power == "" {
		c.Eval.Power = PowerLegacy
	}
}

func (c *Config) expandEnvVars() {
	c.History.Path = os.ExpandEnv(c.History.Path)
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Display.MaxDigits < 1 || c.Display.MaxDigits > 17 {
		return fmt.Errorf("display.max_digits must be between 1 and 17, not %d", c.Display.MaxDigits)
	}
	if c.History.MaxEntries < 1 {
		return fmt.Errorf("history.max_entries must be positive, not %d", c.History.MaxEntries)
	}
	switch c.Eval.Power {
	case PowerLegacy, PowerExact:
	default:
		return fmt.Errorf("eval.power must be %q or %q, not %q", PowerLegacy, PowerExact, c.Eval.Power)
	}
	return nil
}

// Options returns the evaluator options the configuration selects.
func (c *Config) Options() []scicalc.Option {
	var opts []scicalc.Option
	if c.Eval.Power == PowerExact {
		opts = append(opts, scicalc.Power(scicalc.ExactPow))
	}
	if c.Eval.SkipInvalid {
		opts = append(opts, scicalc.SkipInvalid())
	}
	return opts
}

// InMemory reports whether history should be kept in memory only.
func (c *Config) InMemory() bool {
	return c.History.Path == "" || c.History.Path == ":memory:"
}
