package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pensup/pensup/internal/logging"
	"github.com/pensup/pensup/internal/migrations"
	"github.com/pressly/goose/v3"
)

// SQLiteStore persists key-value pairs in a single-table SQLite database.
type SQLiteStore struct {
	db    *sql.DB
	quota int
	log   logging.Logger
}

// OpenSQLite opens (creating if needed) the database at dsn, runs the schema
// migrations and returns a store enforcing the given per-value quota in
// bytes. A quota of 0 disables the limit.
func OpenSQLite(ctx context.Context, dsn string, quota int, log logging.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate store: %w", err)
	}

	return &SQLiteStore{db: db, quota: quota, log: log}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return value, nil
}

// Set writes the value under key. It reports false instead of raising when
// the value exceeds the quota or the medium rejects the write, so the
// caller can retry with a reduced payload.
func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) bool {
	if s.quota > 0 && len(value) > s.quota {
		s.log.Warn(ctx, "write refused, quota exceeded", "key", key, "size", len(value), "quota", s.quota)
		return false
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		s.log.Error(ctx, "write failed", "key", key, "error", err)
		return false
	}
	return true
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
