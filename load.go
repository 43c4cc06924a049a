package textq

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// LoadFile imports one delimited file as a table, replacing any existing
// table with the same derived name. The file is read fully into memory,
// split into header and data rows, and each column gets the narrowest
// common type across its values. The delimiter follows the extension
// policy of delimiterForPath.
//
// Replacement is atomic from the caller's perspective: rows are staged into
// a shadow table inside one transaction and swapped in with a rename, so a
// failure partway through leaves the prior table intact and readers never
// observe a half-loaded table.
//
// Returns the derived table name on success, or ErrInvalidName, ErrIO,
// ErrParse, or ErrQuery.
func (s *Store) LoadFile(ctx context.Context, path string) (string, error) {
	return s.load(ctx, path, delimiterForPath(path))
}

// LoadFileDelimiter is LoadFile with an explicit column delimiter, for
// callers that need to override the extension policy.
func (s *Store) LoadFileDelimiter(ctx context.Context, path string, comma rune) (string, error) {
	return s.load(ctx, path, comma)
}

func (s *Store) load(ctx context.Context, path string, comma rune) (string, error) {
	data, err := parseFileDelimiter(path, comma)
	if err != nil {
		return "", err
	}
	if err := s.replaceTable(ctx, data); err != nil {
		return "", err
	}
	return data.name, nil
}

// replaceTable persists tableData under its name using stage-then-swap:
// create a staging table, fill it, drop the old table, rename. All inside
// one transaction.
func (s *Store) replaceTable(ctx context.Context, data *tableData) error {
	// Derived names are always safe; guard anyway before identifier position.
	if !isSafeIdentifier(data.name) {
		return fmt.Errorf("%w: table name %q", ErrInvalidName, data.name)
	}

	staging := stagingName(data.name)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin load transaction: %w", ErrQuery, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, buildCreateTableQuery(staging, data.columns)); err != nil {
		return fmt.Errorf("%w: create staging table: %w", ErrQuery, err)
	}

	if len(data.records) > 0 {
		stmt, err := tx.PrepareContext(ctx, buildInsertQuery(staging, len(data.columns)))
		if err != nil {
			return fmt.Errorf("%w: prepare insert: %w", ErrQuery, err)
		}
		defer stmt.Close()

		for _, rec := range data.records {
			if _, err := stmt.ExecContext(ctx, recordValues(rec, data.columns)...); err != nil {
				return fmt.Errorf("%w: insert into %s: %w", ErrQuery, data.name, err)
			}
		}
	}

	if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS `+quoteIdentifier(data.name)); err != nil {
		return fmt.Errorf("%w: drop previous %s: %w", ErrQuery, data.name, err)
	}
	if _, err := tx.ExecContext(ctx,
		`ALTER TABLE `+quoteIdentifier(staging)+` RENAME TO `+quoteIdentifier(data.name)); err != nil {
		return fmt.Errorf("%w: swap in %s: %w", ErrQuery, data.name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit load of %s: %w", ErrQuery, data.name, err)
	}
	return nil
}

// stagingName builds a shadow table name that cannot collide with a derived
// user table name, even across crashed loads.
func stagingName(table string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	return table + "_staging_" + suffix
}

// buildCreateTableQuery constructs the CREATE TABLE statement for the staged
// table. Names reaching this point have passed the safe-identifier check.
func buildCreateTableQuery(table string, columns []columnInfo) string {
	defs := make([]string, 0, len(columns))
	for _, col := range columns {
		defs = append(defs, quoteIdentifier(col.name)+" "+col.typ.sqlType())
	}
	return fmt.Sprintf(`CREATE TABLE %s (%s)`, quoteIdentifier(table), strings.Join(defs, ", "))
}

// buildInsertQuery constructs the INSERT statement with one placeholder per
// column.
func buildInsertQuery(table string, columnCount int) string {
	placeholders := make([]string, columnCount)
	for i := range placeholders {
		placeholders[i] = "?"
	}
	return fmt.Sprintf(`INSERT INTO %s VALUES (%s)`, quoteIdentifier(table), strings.Join(placeholders, ", "))
}

// recordValues converts a record's string cells to typed bind values
// following the inferred column types. Empty cells become NULL.
func recordValues(rec record, columns []columnInfo) []any {
	values := make([]any, len(columns))
	for i := range columns {
		var cell string
		if i < len(rec) {
			cell = rec[i]
		}
		values[i] = cellValue(cell, columns[i].typ)
	}
	return values
}

// cellValue converts one cell to its typed bind value. A cell that no longer
// parses as the inferred type is stored as its raw text; inference saw every
// value, so this happens only for TEXT columns.
func cellValue(cell string, typ columnType) any {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return nil
	}

	switch typ {
	case columnTypeBoolean:
		if strings.EqualFold(trimmed, "true") {
			return int64(1)
		}
		return int64(0)
	case columnTypeInteger:
		if v, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return v
		}
	case columnTypeReal:
		if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return v
		}
	}
	return cell
}
