package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/glyphgrid/internal/deploy"
)

// Export is a recorded deploy payload.
type Export struct {
	ID        string
	Namespace string
	Name      string
	Payload   deploy.Payload
	Size      int // encoded payload bytes
	CreatedAt time.Time
}

// SaveExport records a payload and returns the stored entry.
func (s *Store) SaveExport(namespace, name string, p deploy.Payload) (Export, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return Export{}, fmt.Errorf("storage: cannot encode payload: %w", err)
	}

	e := Export{
		ID:        uuid.NewString(),
		Namespace: namespace,
		Name:      name,
		Payload:   p,
		Size:      len(data),
		CreatedAt: time.Now().UTC(),
	}
	_, err = s.db.Exec(
		"INSERT INTO exports (id, namespace, name, payload) VALUES (?, ?, ?, ?)",
		e.ID, namespace, name, string(data),
	)
	if err != nil {
		return Export{}, fmt.Errorf("storage: cannot save export: %w", err)
	}
	return e, nil
}

// ExportByID returns the export with the given id, or nil if none exists.
func (s *Store) ExportByID(id string) (*Export, error) {
	row := s.db.QueryRow(
		`SELECT id, namespace, name, payload, created_at FROM exports WHERE id = ?`,
		id,
	)
	e, err := scanExport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// RecentExports lists the newest exports of a namespace first.
func (s *Store) RecentExports(namespace string, limit int) ([]Export, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, namespace, name, payload, created_at
		 FROM exports
		 WHERE namespace = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		namespace, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query exports: %w", err)
	}
	defer rows.Close()

	var exports []Export
	for rows.Next() {
		e, err := scanExport(rows)
		if err != nil {
			return nil, err
		}
		exports = append(exports, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return exports, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExport(sc scanner) (Export, error) {
	var e Export
	var payload string
	var createdAt any
	if err := sc.Scan(&e.ID, &e.Namespace, &e.Name, &payload, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Export{}, err
		}
		return Export{}, fmt.Errorf("storage: cannot scan export: %w", err)
	}
	if err := json.Unmarshal([]byte(payload), &e.Payload); err != nil {
		return Export{}, fmt.Errorf("storage: cannot decode export %s: %w", e.ID, err)
	}
	e.Size = len(payload)
	e.CreatedAt = parseTime(createdAt)
	return e, nil
}
