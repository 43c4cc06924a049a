package textq

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // registers the pure-Go "sqlite" driver
)

// Store owns the process-wide on-disk SQLite database holding all imported
// tables. Open it once at startup and Close it at shutdown.
//
// The store is not designed for concurrent access: all operations against one
// Store must be serialized by the caller (the connection pool is pinned to a
// single connection to keep that discipline honest). Session provides a
// mutex-guarded front for hosts that need one.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if necessary) the SQLite database at path and verifies
// the connection. Returns ErrIO when the database file cannot be opened.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open store %s: %w", ErrIO, path, err)
	}

	// Single-owner discipline: one connection, no internal concurrency.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: open store %s: %w", ErrIO, path, err)
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the on-disk location of the store.
func (s *Store) Path() string {
	return s.path
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// tableExists checks the live schema for a table with the given name. The
// name is bound as a parameter, never interpolated.
func (s *Store) tableExists(ctx context.Context, table string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`,
		table,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return n > 0, nil
}
