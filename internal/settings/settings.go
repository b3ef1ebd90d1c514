// Package settings provides access to the settings table for
// persisting user-adjustable daemon options across restarts.
package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Setting keys.
const (
	// KeyVerbose selects between verbose and compact decode output.
	KeyVerbose = "verbose"
)

// ErrNotFound is returned when a setting key has no stored value.
var ErrNotFound = errors.New("settings: key not found")

// Store defines the interface for settings persistence.
type Store interface {
	// Verbose reports whether verbose decode output is enabled.
	// A missing or unreadable value reports false.
	Verbose(ctx context.Context) bool

	// SetVerbose persists the verbosity toggle.
	SetVerbose(ctx context.Context, verbose bool) error
}

// SQLiteStore persists settings in SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new settings store.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Verbose reports whether verbose decode output is enabled.
//
// A key that has never been set, or a read error, reports false. Decoding
// must keep working with compact output even if the settings table is
// unreadable, so no error is surfaced here.
func (s *SQLiteStore) Verbose(ctx context.Context) bool {
	value, err := s.get(ctx, KeyVerbose)
	if err != nil {
		return false
	}
	return value == "true"
}

// SetVerbose persists the verbosity toggle.
func (s *SQLiteStore) SetVerbose(ctx context.Context, verbose bool) error {
	value := "false"
	if verbose {
		value = "true"
	}
	return s.set(ctx, KeyVerbose, value)
}

// get reads a single setting value.
func (s *SQLiteStore) get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM settings WHERE key = ?", key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading setting %s: %w", key, err)
	}
	return value, nil
}

// set writes a single setting value, inserting or replacing as needed.
func (s *SQLiteStore) set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("writing setting %s: %w", key, err)
	}
	return nil
}
