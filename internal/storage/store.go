// Package storage persists named JSON slots in a local SQLite file.
//
// Persistence is best-effort: a missing, corrupt or unavailable slot reads
// as the caller's default, and a failed write leaves the in-memory value
// authoritative. Nothing in this package is fatal to the UI.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SlotStore is typed read/write access to named slots of durable storage.
type SlotStore interface {
	// Read unmarshals the stored value for key into dest and reports whether
	// anything usable was found. On false the caller keeps its default.
	Read(ctx context.Context, key string, dest any) bool
	// Write serializes value and persists it before returning.
	Write(ctx context.Context, key string, value any) error
	Close() error
}

// SQLiteStore keeps slots in a single SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) Read(ctx context.Context, key string, dest any) bool {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?`, key).Scan(&raw)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.WarnContext(ctx, "Slot read failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		slog.WarnContext(ctx, "Slot holds unparsable data", "key", key, "error", err)
		return false
	}
	return true
}

func (s *SQLiteStore) Write(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal slot %s: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO slots (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, string(raw))
	if err != nil {
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	return nil
}
