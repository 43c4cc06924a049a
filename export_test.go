package textq

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportXLSX(t *testing.T) {
	t.Parallel()

	t.Run("writes header row then data rows in order", func(t *testing.T) {
		t.Parallel()

		rs := &ResultSet{
			Table:   "people",
			Columns: []string{"id", "name", "amount"},
			Rows: [][]any{
				{int64(1), "Alice", 10.5},
				{int64(2), "Bob", int64(20)},
			},
		}

		path := filepath.Join(t.TempDir(), "out.xlsx")
		written, err := ExportXLSX(rs, path)
		require.NoError(t, err)
		assert.Equal(t, path, written)

		f, err := excelize.OpenFile(written)
		require.NoError(t, err)
		defer f.Close() //nolint:errcheck

		rows, err := f.GetRows(exportSheet)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"id", "name", "amount"}, rows[0])
		assert.Equal(t, []string{"1", "Alice", "10.5"}, rows[1])
		assert.Equal(t, []string{"2", "Bob", "20"}, rows[2])
	})

	t.Run("path without extension is normalized", func(t *testing.T) {
		t.Parallel()

		rs := &ResultSet{Columns: []string{"id"}, Rows: [][]any{{int64(1)}}}

		base := filepath.Join(t.TempDir(), "report")
		written, err := ExportXLSX(rs, base)
		require.NoError(t, err)
		assert.Equal(t, base+".xlsx", written)

		_, err = os.Stat(written)
		require.NoError(t, err)
	})

	t.Run("empty result set is a precondition failure and writes nothing", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nothing.xlsx")

		_, err := ExportXLSX(&ResultSet{Columns: []string{"id"}}, path)
		require.ErrorIs(t, err, ErrEmptyResult)

		_, err = ExportXLSX(nil, path)
		require.ErrorIs(t, err, ErrEmptyResult)

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("unwritable path is an i/o failure", func(t *testing.T) {
		t.Parallel()

		rs := &ResultSet{Columns: []string{"id"}, Rows: [][]any{{int64(1)}}}

		_, err := ExportXLSX(rs, filepath.Join(t.TempDir(), "no-such-dir", "out.xlsx"))
		require.ErrorIs(t, err, ErrIO)
	})

	t.Run("search to export round trip", func(t *testing.T) {
		t.Parallel()

		store := openTestStore(t)
		ctx := context.Background()
		table := loadCSV(t, store, "people.csv", "id,name,amount\n1,Alice,10.5\n2,Bob,20\n")

		rs, err := store.Search(ctx, table, "name", "al")
		require.NoError(t, err)

		written, err := ExportXLSX(rs, filepath.Join(t.TempDir(), "matches.xlsx"))
		require.NoError(t, err)

		f, err := excelize.OpenFile(written)
		require.NoError(t, err)
		defer f.Close() //nolint:errcheck

		rows, err := f.GetRows(exportSheet)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, []string{"id", "name", "amount"}, rows[0])
		assert.Equal(t, []string{"1", "Alice", "10.5"}, rows[1])
	})
}

func TestNormalizeXLSXPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a.xlsx", normalizeXLSXPath("a.xlsx"))
	assert.Equal(t, "a.XLSX", normalizeXLSXPath("a.XLSX"))
	assert.Equal(t, "a.xlsx", normalizeXLSXPath("a"))
	assert.Equal(t, "a.csv.xlsx", normalizeXLSXPath("a.csv"))
}
