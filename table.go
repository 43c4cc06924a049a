package textq

// tableData is the parsed, typed form of one delimited file, ready to be
// persisted as a table.
type tableData struct {
	// name is the table name derived from the file path.
	name string
	// header is the first row of the file, in file order.
	header header
	// records are the data rows, in file order.
	records []record
	// columns carries the inferred type for each header column.
	columns []columnInfo
}

// newTableData creates a tableData, inferring column types from the records.
func newTableData(name string, h header, records []record) *tableData {
	return &tableData{
		name:    name,
		header:  h,
		records: records,
		columns: inferColumns(h, records),
	}
}
