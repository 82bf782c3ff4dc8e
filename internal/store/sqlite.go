package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db     *sql.DB
	logger *log.Logger
}

func NewSQLite(path string, logger *log.Logger) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	return &SQLiteStore{db: db, logger: logger.With("component", "store")}, nil
}

func (s *SQLiteStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS collections (
			name TEXT PRIMARY KEY,
			body TEXT NOT NULL,
			updated_ts TEXT NOT NULL
		);`)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Read decodes the stored document for c into out. A missing row or a body
// that no longer parses leaves out untouched, so whatever default the
// caller prepared survives.
func (s *SQLiteStore) Read(ctx context.Context, c Collection, out any) {
	row := s.db.QueryRowContext(ctx, `SELECT body FROM collections WHERE name = ?`, string(c))
	var body string
	if err := row.Scan(&body); err != nil {
		if err != sql.ErrNoRows {
			s.logger.Warn("read failed, using defaults", "collection", c, "err", err)
		}
		return
	}
	if err := json.Unmarshal([]byte(body), out); err != nil {
		s.logger.Warn("corrupt collection, using defaults", "collection", c, "err", err)
	}
}

// Write replaces the stored document for c. Failures are logged and
// dropped: the change survives in memory for the session but will be lost
// on reload.
func (s *SQLiteStore) Write(ctx context.Context, c Collection, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.logger.Warn("write skipped, marshal failed", "collection", c, "err", err)
		return
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO collections(name, body, updated_ts) VALUES(?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			body = excluded.body,
			updated_ts = excluded.updated_ts
	`, string(c), string(body), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		s.logger.Warn("write failed, keeping in-memory state", "collection", c, "err", err)
	}
}

func (s *SQLiteStore) Clear(ctx context.Context, c Collection) {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM collections WHERE name = ?`, string(c)); err != nil {
		s.logger.Warn("clear failed", "collection", c, "err", err)
	}
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
