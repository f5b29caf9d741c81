package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/javiermolinar/teamcal/internal/config"
	"github.com/javiermolinar/teamcal/internal/db"
	"github.com/javiermolinar/teamcal/internal/store"
)

// openTimeout bounds the initial snapshot load.
const openTimeout = 5 * time.Second

// InitState tracks whether this is a first run.
type InitState struct {
	ConfigMissing bool
	DBMissing     bool
	ConfigPath    string
	DBPath        string
}

// FirstRun reports whether nothing has been written yet.
func (s InitState) FirstRun() bool {
	return s.ConfigMissing && s.DBMissing
}

// DetectInitState checks for missing config or database files.
func DetectInitState(cfg *config.Config, configPath string) (InitState, error) {
	state := InitState{
		ConfigPath: configPath,
		DBPath:     cfg.Storage.DBPath,
	}

	configMissing, err := pathMissing(state.ConfigPath)
	if err != nil {
		return InitState{}, fmt.Errorf("checking config path: %w", err)
	}
	dbMissing, err := pathMissing(state.DBPath)
	if err != nil {
		return InitState{}, fmt.Errorf("checking db path: %w", err)
	}

	state.ConfigMissing = configMissing
	state.DBMissing = dbMissing
	return state, nil
}

func pathMissing(path string) (bool, error) {
	if path == "" {
		return true, nil
	}
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return true, nil
	}
	return false, err
}

func openRepo(dbPath string) (*db.SQLite, error) {
	if dbPath == "" {
		return nil, errors.New("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	repo, err := db.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	return repo, nil
}

// OpenStore opens the configured database and hydrates a store from it.
// The returned closer releases the database.
func OpenStore(cfg *config.Config, logger *slog.Logger) (*store.Store, io.Closer, error) {
	repo, err := openRepo(cfg.Storage.DBPath)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
	defer cancel()

	s, err := store.Open(ctx, repo,
		store.WithKey(cfg.Storage.SnapshotKey),
		store.WithLogger(logger),
	)
	if err != nil {
		_ = repo.Close()
		return nil, nil, fmt.Errorf("opening store: %w", err)
	}
	return s, repo, nil
}
