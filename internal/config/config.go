package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"couchrunner/internal/logging"
	"couchrunner/internal/storage"

	"gopkg.in/yaml.v3"
)

// AppName names the per-user config directory.
const AppName = "CouchRunner"

type Config struct {
	Store StoreConfig `yaml:"store"`
	Timer TimerConfig `yaml:"timer"`
	Log   LogConfig   `yaml:"log"`
}

type StoreConfig struct {
	// Path of the YAML store file. Empty means the per-user default.
	Path string `yaml:"path"`
}

type TimerConfig struct {
	// TickInterval is the wall-clock length of one program second.
	TickInterval time.Duration `yaml:"tick_interval"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Timer: TimerConfig{TickInterval: time.Second},
		Log:   LogConfig{Level: "info"},
	}
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error: defaults are used. Env vars:
//
//	COUCHRUNNER_STORE_PATH, COUCHRUNNER_TICK_INTERVAL, COUCHRUNNER_LOG_LEVEL
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parsing config file: %w", err)
			}
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("COUCHRUNNER_STORE_PATH"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("COUCHRUNNER_TICK_INTERVAL"); v != "" {
		interval, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("COUCHRUNNER_TICK_INTERVAL: %w", err)
		}
		cfg.Timer.TickInterval = interval
	}
	if v := os.Getenv("COUCHRUNNER_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	return nil
}

func (c *Config) validate() error {
	if c.Timer.TickInterval <= 0 {
		return fmt.Errorf("timer.tick_interval must be positive")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// StorePath returns the configured store file or the per-user default.
func (c *Config) StorePath() (string, error) {
	if c.Store.Path != "" {
		return c.Store.Path, nil
	}
	return storage.DefaultStorePath(AppName)
}

// DefaultPath returns the per-user config file location, or "" when the
// user config directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, "config.yaml")
}
