package textq

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// Search returns up to MaxResultRows rows of table whose column value
// contains pattern as an unanchored substring. Matching uses SQLite's
// default LIKE collation: case-insensitive for ASCII letters, case-sensitive
// beyond. An empty pattern matches every row, including rows whose cell is
// NULL (every string contains the empty string). Rows come back in rowid
// order, so an identical query against an unchanged table returns an
// identical result.
//
// Both table and column are validated against the live schema before they
// reach identifier position; the pattern is always bound as a parameter.
// Returns ErrUnknownTable, ErrUnknownColumn, or ErrQuery on failure. The
// store itself is never modified.
func (s *Store) Search(ctx context.Context, table, column, pattern string) (*ResultSet, error) {
	columns, err := s.Columns(ctx, table)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(columns, column) {
		return nil, fmt.Errorf("%w: %q in table %q", ErrUnknownColumn, column, table)
	}

	// COALESCE folds NULL cells to the empty string so the empty pattern
	// matches them too.
	query := fmt.Sprintf(
		`SELECT * FROM %s WHERE COALESCE(%s, '') LIKE ? ESCAPE '\' ORDER BY rowid LIMIT %d`,
		quoteIdentifier(table), quoteIdentifier(column), MaxResultRows,
	)

	rows, err := s.db.QueryContext(ctx, query, "%"+escapeLikePattern(pattern)+"%")
	if err != nil {
		return nil, fmt.Errorf("%w: search %s.%s: %w", ErrQuery, table, column, err)
	}
	defer rows.Close()

	rs := &ResultSet{
		Table:   table,
		Columns: columns,
		Rows:    make([][]any, 0, MaxResultRows),
	}

	for rows.Next() {
		values := make([]any, len(columns))
		scanTargets := make([]any, len(columns))
		for i := range values {
			scanTargets[i] = &values[i]
		}
		if err := rows.Scan(scanTargets...); err != nil {
			return nil, fmt.Errorf("%w: search %s.%s: %w", ErrQuery, table, column, err)
		}
		rs.Rows = append(rs.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: search %s.%s: %w", ErrQuery, table, column, err)
	}

	return rs, nil
}

// escapeLikePattern escapes LIKE metacharacters so the pattern matches
// literally as a substring.
func escapeLikePattern(pattern string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(pattern)
}
