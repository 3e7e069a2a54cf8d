// Package config loads settings for the rpncalc shells.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable holding a config file path.
const EnvVar = "RPNCALC_CONFIG"

// Config holds the complete shell configuration.
type Config struct {
	// Format is the fmt verb used to print results.
	Format string       `toml:"format" yaml:"format"`
	Strict bool         `toml:"strict" yaml:"strict"`
	Buffer BufferConfig `toml:"buffer" yaml:"buffer"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// BufferConfig holds settings for the saved-text stack.
type BufferConfig struct {
	// Depth is the maximum number of saved entries. 0 means unbounded. If the
	// field is absent, the depth is 16.
	Depth int `toml:"depth" yaml:"depth"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := Config{Buffer: BufferConfig{Depth: 16}}
	cfg.applyDefaults()
	return &cfg
}

// Load reads a config file. Files ending in .yaml or .yml are decoded as YAML
// and anything else as TOML. Fields missing from the file keep the values from
// Default.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		_, err = toml.Decode(string(data), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromEnv loads the config named by RPNCALC_CONFIG, or else the first of
// the default locations that exists, or else the built-in defaults.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}
	for _, p := range searchPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

func searchPaths() []string {
	paths := []string{"rpncalc.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "rpncalc", "config.toml"))
	}
	return paths
}

func (c *Config) applyDefaults() {
	if c.Format == "" {
		c.Format = "%g"
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	// A bad or missing verb shows up as %!v(...) or %!(EXTRA ...).
	if s := fmt.Sprintf(c.Format, 0.0); strings.Contains(s, "%!") {
		return fmt.Errorf("format %q is not a single float verb", c.Format)
	}
	if c.Buffer.Depth < 0 {
		return fmt.Errorf("buffer depth %d is negative", c.Buffer.Depth)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// ParseLevel parses a log level name.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}
