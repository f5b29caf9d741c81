// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/teamcal/internal/schedule"
)

// SQLite implements schedule.SnapshotRepository using SQLite.
type SQLite struct {
	db  *sql.DB
	now func() time.Time
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db, now: time.Now}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// LoadSnapshot returns the raw snapshot stored under key.
// Returns schedule.ErrSnapshotNotFound if the key has no row.
func (s *SQLite) LoadSnapshot(ctx context.Context, key string) ([]byte, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM snapshots WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, schedule.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying snapshot: %w", err)
	}
	return []byte(data), nil
}

// SaveSnapshot replaces the snapshot stored under key.
func (s *SQLite) SaveSnapshot(ctx context.Context, key string, data []byte) error {
	query := `
		INSERT INTO snapshots (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`

	if _, err := s.db.ExecContext(ctx, query, key, string(data), s.now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

// DeleteSnapshot removes the snapshot stored under key.
func (s *SQLite) DeleteSnapshot(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting snapshot: %w", err)
	}
	return nil
}

// UpdatedAt returns when the snapshot under key was last written.
// Returns schedule.ErrSnapshotNotFound if the key has no row.
func (s *SQLite) UpdatedAt(ctx context.Context, key string) (time.Time, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT updated_at FROM snapshots WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, schedule.ErrSnapshotNotFound
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("querying snapshot: %w", err)
	}

	t, err := parseTimestamp(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing updated_at: %w", err)
	}
	return t, nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// parseTimestamp handles both RFC 3339 values written by SaveSnapshot and
// the CURRENT_TIMESTAMP default format.
func parseTimestamp(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05Z",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse timestamp: %s", s)
}

var _ schedule.SnapshotRepository = (*SQLite)(nil)
