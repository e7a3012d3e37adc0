// Package config loads runtime settings from an optional YAML file and
// DREAMBIG_* environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the config file when --config is not given.
const EnvConfigPath = "DREAMBIG_CONFIG"

// Config holds all runtime settings.
type Config struct {
	Log   LogConfig   `yaml:"log"`
	Watch WatchConfig `yaml:"watch"`
}

// LogConfig controls the stderr logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or console
}

// WatchConfig controls generate --watch.
type WatchConfig struct {
	DebounceMs int `yaml:"debounce_ms"`
}

// Debounce returns the watch debounce interval.
func (w WatchConfig) Debounce() time.Duration {
	return time.Duration(w.DebounceMs) * time.Millisecond
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Watch: WatchConfig{
			DebounceMs: 300,
		},
	}
}

// Load reads path, or the file named by DREAMBIG_CONFIG when path is empty,
// then applies environment overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("DREAMBIG_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("DREAMBIG_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("DREAMBIG_WATCH_DEBOUNCE_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Watch.DebounceMs = n
		}
	}
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}
	if c.Watch.DebounceMs < 0 {
		return fmt.Errorf("watch.debounce_ms must not be negative")
	}
	return nil
}
