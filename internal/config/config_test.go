package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Storage.SnapshotKey != "teamCalendarData" {
		t.Errorf("expected snapshot_key teamCalendarData, got %s", cfg.Storage.SnapshotKey)
	}
	if cfg.Schedule.MaxDuration != 8 {
		t.Errorf("expected max_duration 8, got %v", cfg.Schedule.MaxDuration)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("expected theme light, got %s", cfg.UI.Theme)
	}
	if cfg.UI.DoubleClickMS != 400 {
		t.Errorf("expected double_click_ms 400, got %d", cfg.UI.DoubleClickMS)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected log level info, got %s", cfg.Log.Level)
	}
	if !strings.HasSuffix(cfg.Storage.DBPath, "teamcal.db") {
		t.Errorf("unexpected db_path %s", cfg.Storage.DBPath)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Schedule.MaxDuration != 8 {
		t.Errorf("expected default max_duration, got %v", cfg.Schedule.MaxDuration)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[storage]
db_path = "/tmp/test.db"
snapshot_key = "office"

[schedule]
max_duration = 6

[ui]
theme = "mocha"
double_click_ms = 300

[log]
path = "/tmp/teamcal.log"
level = "debug"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path /tmp/test.db, got %s", cfg.Storage.DBPath)
	}
	if cfg.Storage.SnapshotKey != "office" {
		t.Errorf("expected snapshot_key office, got %s", cfg.Storage.SnapshotKey)
	}
	if cfg.Schedule.MaxDuration != 6 {
		t.Errorf("expected max_duration 6, got %v", cfg.Schedule.MaxDuration)
	}
	if cfg.UI.Theme != "mocha" {
		t.Errorf("expected theme mocha, got %s", cfg.UI.Theme)
	}
	if cfg.DoubleClickWindow() != 300*time.Millisecond {
		t.Errorf("expected 300ms window, got %v", cfg.DoubleClickWindow())
	}
	if cfg.Log.Path != "/tmp/teamcal.log" || cfg.Log.Level != "debug" {
		t.Errorf("unexpected log config %+v", cfg.Log)
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[storage\n"), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil || !strings.Contains(err.Error(), "parsing config file") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[storage]
db_path = "/tmp/test.db"

[ui]
theme = "frappe"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("TEAMCAL_THEME", "latte")
	t.Setenv("TEAMCAL_MAX_DURATION", "4.5")
	t.Setenv("TEAMCAL_SNAPSHOT_KEY", "env-key")
	t.Setenv("TEAMCAL_LOG_LEVEL", "warn")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.UI.Theme != "latte" {
		t.Errorf("expected theme latte from env, got %s", cfg.UI.Theme)
	}
	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path from file, got %s", cfg.Storage.DBPath)
	}
	if cfg.Schedule.MaxDuration != 4.5 {
		t.Errorf("expected max_duration 4.5 from env, got %v", cfg.Schedule.MaxDuration)
	}
	if cfg.Storage.SnapshotKey != "env-key" {
		t.Errorf("expected snapshot_key from env, got %s", cfg.Storage.SnapshotKey)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("expected log level warn, got %s", cfg.Log.Level)
	}
}

func TestLoadFrom_BadEnvDuration(t *testing.T) {
	t.Setenv("TEAMCAL_MAX_DURATION", "lots")
	if _, err := LoadFrom("/nonexistent/config.toml"); err == nil {
		t.Error("expected error for unparseable TEAMCAL_MAX_DURATION")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty db path", func(c *Config) { c.Storage.DBPath = "" }},
		{"blank snapshot key", func(c *Config) { c.Storage.SnapshotKey = "  " }},
		{"zero max duration", func(c *Config) { c.Schedule.MaxDuration = 0 }},
		{"max duration past day", func(c *Config) { c.Schedule.MaxDuration = 13 }},
		{"double click too fast", func(c *Config) { c.UI.DoubleClickMS = 10 }},
		{"empty log path", func(c *Config) { c.Log.Path = "" }},
		{"unknown log level", func(c *Config) { c.Log.Level = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	if err := Default().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		input string
		want  string
	}{
		{"~/data/teamcal.db", filepath.Join(home, "data", "teamcal.db")},
		{"/abs/teamcal.db", "/abs/teamcal.db"},
		{"relative.db", "relative.db"},
	}

	for _, tt := range tests {
		if got := expandPath(tt.input); got != tt.want {
			t.Errorf("expandPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Storage.DBPath = "/tmp/saved.db"
	cfg.UI.Theme = "macchiato"
	cfg.Schedule.MaxDuration = 5

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.Storage.DBPath != "/tmp/saved.db" || loaded.UI.Theme != "macchiato" || loaded.Schedule.MaxDuration != 5 {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}
