package textq

import (
	"context"
	"fmt"
)

// Tables lists the tables currently in the store, ordered by name so the
// listing is stable within a session. It is a pure read over the live schema;
// nothing is cached.
func (s *Store) Tables(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("%w: list tables: %w", ErrQuery, err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: list tables: %w", ErrQuery, err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list tables: %w", ErrQuery, err)
	}
	return tables, nil
}

// Columns lists the column names of a table in persisted schema order. The
// table name is checked against the live schema before it reaches identifier
// position; a name that is absent (or could never be a derived name) returns
// ErrUnknownTable.
func (s *Store) Columns(ctx context.Context, table string) ([]string, error) {
	if err := s.requireTable(ctx, table); err != nil {
		return nil, err
	}

	// PRAGMA arguments cannot be bound; the name was just whitelisted above.
	rows, err := s.db.QueryContext(ctx, `PRAGMA table_info(`+quoteIdentifier(table)+`)`)
	if err != nil {
		return nil, fmt.Errorf("%w: describe %s: %w", ErrQuery, table, err)
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var (
			cid        int
			name, typ  string
			notNull    int
			defaultVal any
			pk         int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &defaultVal, &pk); err != nil {
			return nil, fmt.Errorf("%w: describe %s: %w", ErrQuery, table, err)
		}
		columns = append(columns, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: describe %s: %w", ErrQuery, table, err)
	}
	return columns, nil
}

// requireTable rejects names that are unsafe or absent from the live schema.
func (s *Store) requireTable(ctx context.Context, table string) error {
	if !isSafeIdentifier(table) {
		// An unsafe name cannot exist in the store: every derived name is
		// sanitized. Report it the same way as any other miss.
		return fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}
	ok, err := s.tableExists(ctx, table)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}
	return nil
}
