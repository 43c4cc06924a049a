package textq

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenClose(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "store.db")
	store, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, path, store.Path())
	require.NoError(t, store.Close())

	// The database file persists across process lifetimes.
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestOpenUnwritableLocation(t *testing.T) {
	t.Parallel()

	_, err := Open(filepath.Join(t.TempDir(), "missing-dir", "store.db"))
	require.ErrorIs(t, err, ErrIO)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	t.Run("load creates a table with the derived name", func(t *testing.T) {
		t.Parallel()

		store := openTestStore(t)
		path := writeTempFile(t, "sales report-2024.csv", "id,name,amount\n1,Alice,10.5\n2,Bob,20\n")

		table, err := store.LoadFile(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, "sales_report_2024", table)

		tables, err := store.Tables(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"sales_report_2024"}, tables)
	})

	t.Run("reload fully replaces the previous table", func(t *testing.T) {
		t.Parallel()

		store := openTestStore(t)
		ctx := context.Background()

		dir := t.TempDir()
		path := filepath.Join(dir, "items.csv")
		require.NoError(t, os.WriteFile(path, []byte("id,name\n1,a\n2,b\n3,c\n"), 0600))
		_, err := store.LoadFile(ctx, path)
		require.NoError(t, err)

		// Same derived name, different shape and rows: no merge, no leftovers.
		require.NoError(t, os.WriteFile(path, []byte("id,label,qty\n9,x,1\n"), 0600))
		table, err := store.LoadFile(ctx, path)
		require.NoError(t, err)

		columns, err := store.Columns(ctx, table)
		require.NoError(t, err)
		assert.Equal(t, []string{"id", "label", "qty"}, columns)

		rs, err := store.Search(ctx, table, "id", "")
		require.NoError(t, err)
		assert.Equal(t, 1, rs.RowCount())
		assert.Equal(t, []any{int64(9), "x", int64(1)}, rs.Rows[0])
	})

	t.Run("failed reload leaves the prior table intact", func(t *testing.T) {
		t.Parallel()

		store := openTestStore(t)
		ctx := context.Background()

		good := writeTempFile(t, "orders.csv", "id,item\n1,book\n2,pen\n")
		table, err := store.LoadFile(ctx, good)
		require.NoError(t, err)

		bad := writeTempFile(t, "orders.csv", "id,item\n1\n")
		_, err = store.LoadFile(ctx, bad)
		require.ErrorIs(t, err, ErrParse)

		rs, err := store.Search(ctx, table, "id", "")
		require.NoError(t, err)
		assert.Equal(t, 2, rs.RowCount())
	})

	t.Run("typed storage round trip", func(t *testing.T) {
		t.Parallel()

		store := openTestStore(t)
		ctx := context.Background()

		table := loadCSV(t, store, "mixed.csv", "n,x,flag,word\n1,1.5,true,hi\n2,2.5,false,yo\n")
		rs, err := store.Search(ctx, table, "n", "")
		require.NoError(t, err)
		require.Equal(t, 2, rs.RowCount())
		assert.Equal(t, []any{int64(1), 1.5, int64(1), "hi"}, rs.Rows[0])
		assert.Equal(t, []any{int64(2), 2.5, int64(0), "yo"}, rs.Rows[1])
	})

	t.Run("empty cells load as NULL", func(t *testing.T) {
		t.Parallel()

		store := openTestStore(t)
		ctx := context.Background()

		table := loadCSV(t, store, "sparse.csv", "id,score\n1,\n2,7\n")
		rs, err := store.Search(ctx, table, "id", "")
		require.NoError(t, err)
		require.Equal(t, 2, rs.RowCount())
		assert.Nil(t, rs.Rows[0][1])
		assert.Equal(t, int64(7), rs.Rows[1][1])
	})

	t.Run("explicit delimiter override", func(t *testing.T) {
		t.Parallel()

		store := openTestStore(t)
		ctx := context.Background()

		path := writeTempFile(t, "pipes.csv", "a|b\n1|2\n")
		table, err := store.LoadFileDelimiter(ctx, path, '|')
		require.NoError(t, err)

		columns, err := store.Columns(ctx, table)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, columns)
	})

	t.Run("no staging leftovers after load", func(t *testing.T) {
		t.Parallel()

		store := openTestStore(t)
		ctx := context.Background()

		loadCSV(t, store, "clean.csv", "id\n1\n")
		tables, err := store.Tables(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"clean"}, tables)
	})
}
