// Package sqlite implements core.Store on a SQLite database. Each collection
// is one row holding the JSON encoded records, replaced in a single
// transaction so readers see either the old or the new collection.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/aretw0/launchdeck/pkg/core"
)

// DefaultFileName is the database file created inside the data directory.
const DefaultFileName = "launchdeck.db"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS collections (
	name       TEXT PRIMARY KEY,
	body       TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`

// DB is a shared handle for every collection stored in one database file.
type DB struct {
	Path     string
	ReadOnly bool
	db       *sql.DB // nil when a read-only database does not exist yet
}

// Open creates the data directory and database if needed and applies the schema.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: failed to create data directory: %v", core.ErrIO, err)
	}

	path := filepath.Join(dir, DefaultFileName)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", core.ErrIO, path, err)
	}
	// A single connection serialises writers inside this process.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: apply schema: %v", core.ErrIO, err)
	}

	return &DB{Path: path, db: db}, nil
}

// OpenReadOnly opens an existing database without creating or migrating it.
// A missing database reads as empty collections.
func OpenReadOnly(dir string) (*DB, error) {
	path := filepath.Join(dir, DefaultFileName)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return &DB{Path: path, ReadOnly: true}, nil
	}

	dsn := "file:" + filepath.ToSlash(path) + "?mode=ro"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", core.ErrIO, path, err)
	}
	db.SetMaxOpenConns(1)
	return &DB{Path: path, ReadOnly: true, db: db}, nil
}

// Close releases the database handle.
func (d *DB) Close() error {
	if d.db == nil {
		return nil
	}
	return d.db.Close()
}

// Store implements core.Store for one named collection.
type Store[R any] struct {
	db   *DB
	name string
}

// NewStore binds a collection name to the database.
func NewStore[R any](db *DB, name string) *Store[R] {
	return &Store[R]{db: db, name: name}
}

// Load returns the collection; a collection never saved is empty.
func (s *Store[R]) Load(ctx context.Context) ([]R, error) {
	if s.db.db == nil {
		return []R{}, nil
	}
	var body string
	err := s.db.db.QueryRowContext(ctx, `SELECT body FROM collections WHERE name = ?`, s.name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return []R{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load %s: %v", core.ErrIO, s.name, err)
	}

	records := []R{}
	if err := json.Unmarshal([]byte(body), &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", core.ErrParse, s.name, err)
	}
	if records == nil {
		records = []R{}
	}
	return records, nil
}

// Save replaces the collection row.
func (s *Store[R]) Save(ctx context.Context, records []R) error {
	if s.db.ReadOnly {
		return fmt.Errorf("%w: %w", core.ErrIO, core.ErrReadOnly)
	}
	if records == nil {
		records = []R{}
	}
	body, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", core.ErrIO, s.name, err)
	}

	tx, err := s.db.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", core.ErrIO, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO collections (name, body, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		s.name, string(body), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("%w: save %s: %v", core.ErrIO, s.name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit %s: %v", core.ErrIO, s.name, err)
	}
	return nil
}

// State implements introspection.Introspectable.
func (s *Store[R]) State() any {
	return map[string]any{
		"path":       s.db.Path,
		"collection": s.name,
		"read_only":  s.db.ReadOnly,
	}
}

// ComponentType implements introspection.Component.
func (s *Store[R]) ComponentType() string {
	return "sqlite"
}

var _ core.Store[core.LaunchItem] = (*Store[core.LaunchItem])(nil)
