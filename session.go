package textq

import (
	"context"
	"sync"
)

// Session ties a Store to the single most-recent search result. Each search
// that succeeds replaces the held result; a failed search leaves it
// untouched. Export consumes whatever is currently held. The result lives
// only as long as the session (or until the next search), matching the
// one-slot model of the original tool.
//
// Session methods serialize access to the store, so a host may drive a
// Session from more than one goroutine; the underlying Store on its own must
// not be shared that way.
type Session struct {
	mu    sync.Mutex
	store *Store
	last  *ResultSet
}

// NewSession wraps a store. The session takes over access to the store; the
// caller should not use the store directly afterwards.
func NewSession(store *Store) *Session {
	return &Session{store: store}
}

// Load imports a delimited file through the store. See Store.LoadFile.
func (s *Session) Load(ctx context.Context, path string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.LoadFile(ctx, path)
}

// LoadDelimiter imports a delimited file with an explicit delimiter.
func (s *Session) LoadDelimiter(ctx context.Context, path string, comma rune) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.LoadFileDelimiter(ctx, path, comma)
}

// Tables lists the store's tables. See Store.Tables.
func (s *Session) Tables(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Tables(ctx)
}

// Columns lists a table's columns. See Store.Columns.
func (s *Session) Columns(ctx context.Context, table string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Columns(ctx, table)
}

// Search runs a substring query and, on success, replaces the held result.
// On failure the previously held result stays in place.
func (s *Session) Search(ctx context.Context, table, column, pattern string) (*ResultSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rs, err := s.store.Search(ctx, table, column, pattern)
	if err != nil {
		return nil, err
	}
	s.last = rs
	return rs, nil
}

// LastResult returns the currently held result set, or nil when no search
// has succeeded yet.
func (s *Session) LastResult() *ResultSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Export writes the held result set to path as a spreadsheet and returns the
// normalized path. Exporting with no held result (or an empty one) is
// ErrEmptyResult.
func (s *Session) Export(path string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ExportXLSX(s.last, path)
}

// Close drops the held result and closes the store.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = nil
	return s.store.Close()
}
