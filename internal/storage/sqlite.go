// Package storage provides SQLite-based persistence for editor sessions,
// the glyph pool cache and the export log.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// sharedNamespace holds entries that do not belong to a single user.
const sharedNamespace = "shared"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS kv (
			namespace TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (namespace, key)
		);

		CREATE TABLE IF NOT EXISTS exports (
			id TEXT PRIMARY KEY,
			namespace TEXT NOT NULL,
			name TEXT NOT NULL,
			payload TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_exports_namespace ON exports(namespace, created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get returns the raw value stored under namespace/key.
func (s *Store) Get(namespace, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(
		"SELECT value FROM kv WHERE namespace = ? AND key = ?",
		namespace, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read %s/%s: %w", namespace, key, err)
	}
	return value, true, nil
}

// Put stores value under namespace/key, replacing any previous value.
func (s *Store) Put(namespace, key, value string) error {
	_, err := s.db.Exec(upsertSQL, namespace, key, value)
	if err != nil {
		return fmt.Errorf("storage: cannot write %s/%s: %w", namespace, key, err)
	}
	return nil
}

// PutAll stores several keys of one namespace in a single transaction.
func (s *Store) PutAll(namespace string, values map[string]string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	for key, value := range values {
		if _, err := tx.Exec(upsertSQL, namespace, key, value); err != nil {
			tx.Rollback()
			return fmt.Errorf("storage: cannot write %s/%s: %w", namespace, key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// All returns every key of a namespace.
func (s *Store) All(namespace string) (map[string]string, error) {
	rows, err := s.db.Query("SELECT key, value FROM kv WHERE namespace = ?", namespace)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query %s: %w", namespace, err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return values, nil
}

// DeleteNamespace removes every key of a namespace.
func (s *Store) DeleteNamespace(namespace string) error {
	_, err := s.db.Exec("DELETE FROM kv WHERE namespace = ?", namespace)
	if err != nil {
		return fmt.Errorf("storage: cannot clear %s: %w", namespace, err)
	}
	return nil
}

const upsertSQL = `
	INSERT INTO kv (namespace, key, value, updated_at)
	VALUES (?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT (namespace, key) DO UPDATE
	SET value = excluded.value, updated_at = excluded.updated_at`

// parseTime handles both time.Time and string DATETIME columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
