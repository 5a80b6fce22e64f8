package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteAdapter stores keys in a single-table SQLite database. It trades the
// JSON adapter's one-file-per-key layout for atomic upserts in one file.
type SQLiteAdapter struct {
	path string
	db   *sql.DB
}

// NewSQLiteAdapter opens (creating if necessary) the database at path and
// ensures the kv table exists.
func NewSQLiteAdapter(path string) (*SQLiteAdapter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value BLOB NOT NULL
		)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create kv table: %w", err)
	}

	return &SQLiteAdapter{path: path, db: db}, nil
}

func (a *SQLiteAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	row := a.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, nil
}

func (a *SQLiteAdapter) Set(ctx context.Context, key string, value []byte) error {
	_, err := a.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (a *SQLiteAdapter) Close() error {
	return a.db.Close()
}
