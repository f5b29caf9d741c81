package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/javiermolinar/teamcal/internal/config"
	"github.com/javiermolinar/teamcal/internal/logging"
)

func TestDetectInitState(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Storage.DBPath = filepath.Join(dir, "teamcal.db")
	configPath := filepath.Join(dir, "config.toml")

	state, err := DetectInitState(cfg, configPath)
	if err != nil {
		t.Fatalf("DetectInitState: %v", err)
	}
	if !state.FirstRun() {
		t.Fatalf("expected a first run, got %+v", state)
	}

	if err := os.WriteFile(configPath, []byte(""), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	state, err = DetectInitState(cfg, configPath)
	if err != nil {
		t.Fatalf("DetectInitState: %v", err)
	}
	if state.ConfigMissing || !state.DBMissing || state.FirstRun() {
		t.Fatalf("state = %+v, want only the database missing", state)
	}
}

func TestOpenStore_SeedsAndPersists(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.DBPath = filepath.Join(t.TempDir(), "data", "teamcal.db")

	s, closer, err := OpenStore(cfg, logging.Discard())
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	if got := len(s.List()); got != 10 {
		t.Fatalf("appointments = %d, want the 10 seeded", got)
	}
	if !s.Delete("1") {
		t.Fatalf("Delete(1) = false")
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, closer, err = OpenStore(cfg, logging.Discard())
	if err != nil {
		t.Fatalf("reopening: %v", err)
	}
	defer closer.Close()
	if got := len(s.List()); got != 9 {
		t.Fatalf("appointments = %d after reopen, want 9", got)
	}
}

func TestOpenStore_EmptyPath(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.DBPath = ""
	if _, _, err := OpenStore(cfg, logging.Discard()); err == nil {
		t.Fatalf("expected an error for an empty db path")
	}
}
