package textq

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeTempFile writes content under a temp dir and returns the full path.
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// openTestStore opens a store on a fresh temp database and closes it with
// the test.
func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

// loadCSV writes a CSV file and loads it, returning the derived table name.
func loadCSV(t *testing.T, store *Store, fileName, content string) string {
	t.Helper()

	table, err := store.LoadFile(context.Background(), writeTempFile(t, fileName, content))
	require.NoError(t, err)
	return table
}
