package textq

// MaxResultRows bounds every search result. A query never returns more rows
// than this regardless of table size.
const MaxResultRows = 500

// ResultSet is the ordered output of one search: the queried table's columns
// in schema order and at most MaxResultRows rows in scan order. Values carry
// the driver's typed representation (int64, float64, string, or nil for
// NULL cells).
//
// A ResultSet is a snapshot; it does not track later changes to the store.
type ResultSet struct {
	// Table is the name of the queried table.
	Table string
	// Columns are the column names, matching the table's schema order at
	// query time.
	Columns []string
	// Rows are the matching rows, each in Columns order.
	Rows [][]any
}

// Empty reports whether the result set is absent or has no rows.
func (rs *ResultSet) Empty() bool {
	return rs == nil || len(rs.Rows) == 0
}

// RowCount returns the number of rows in the result set.
func (rs *ResultSet) RowCount() int {
	if rs == nil {
		return 0
	}
	return len(rs.Rows)
}
