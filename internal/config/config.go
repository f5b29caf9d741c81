// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/teamcal/internal/logging"
	"github.com/javiermolinar/teamcal/internal/schedule"
)

// Config holds the application configuration.
type Config struct {
	Storage  StorageConfig  `toml:"storage"`
	Schedule ScheduleConfig `toml:"schedule"`
	UI       UIConfig       `toml:"ui"`
	Log      LogConfig      `toml:"log"`
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath      string `toml:"db_path"`
	SnapshotKey string `toml:"snapshot_key"`
}

// ScheduleConfig holds editor policy.
type ScheduleConfig struct {
	MaxDuration float64 `toml:"max_duration"` // hours
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme         string `toml:"theme"`           // "mocha", "macchiato", "frappe", "latte", "light"
	DoubleClickMS int    `toml:"double_click_ms"` // max gap between the two presses
}

// LogConfig holds structured log settings.
type LogConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level"` // "debug", "info", "warn", "error"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			DBPath:      defaultDBPath(),
			SnapshotKey: schedule.DefaultSnapshotKey,
		},
		Schedule: ScheduleConfig{
			MaxDuration: 8,
		},
		UI: UIConfig{
			Theme:         "light",
			DoubleClickMS: 400,
		},
		Log: LogConfig{
			Path:  defaultLogPath(),
			Level: "info",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "teamcal.db"
	}
	return filepath.Join(home, ".local", "share", "teamcal", "teamcal.db")
}

// defaultLogPath returns the default log file path.
func defaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "teamcal.log"
	}
	return filepath.Join(home, ".local", "state", "teamcal", "teamcal.log")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "teamcal", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	cfg.Log.Path = expandPath(cfg.Log.Path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("TEAMCAL_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("TEAMCAL_SNAPSHOT_KEY"); v != "" {
		cfg.Storage.SnapshotKey = v
	}
	if v := os.Getenv("TEAMCAL_MAX_DURATION"); v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parsing TEAMCAL_MAX_DURATION: %w", err)
		}
		cfg.Schedule.MaxDuration = d
	}
	if v := os.Getenv("TEAMCAL_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("TEAMCAL_LOG_PATH"); v != "" {
		cfg.Log.Path = v
	}
	if v := os.Getenv("TEAMCAL_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	if strings.TrimSpace(c.Storage.SnapshotKey) == "" {
		return errors.New("snapshot_key must be set")
	}
	if c.Schedule.MaxDuration <= 0 || c.Schedule.MaxDuration > 12 {
		return fmt.Errorf("max_duration must be between 0 and 12 hours, got %v", c.Schedule.MaxDuration)
	}
	if c.UI.DoubleClickMS < 100 || c.UI.DoubleClickMS > 2000 {
		return fmt.Errorf("double_click_ms must be between 100 and 2000, got %d", c.UI.DoubleClickMS)
	}
	if c.Log.Path == "" {
		return errors.New("log path must be set")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// DoubleClickWindow returns the double-click gap as a duration.
func (c *Config) DoubleClickWindow() time.Duration {
	return time.Duration(c.UI.DoubleClickMS) * time.Millisecond
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
