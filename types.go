package textq

// File format delimiters
const (
	// commaDelimiter is the delimiter used for files with a .csv extension
	commaDelimiter = ','
	// semicolonDelimiter is the delimiter used for every other extension
	semicolonDelimiter = ';'
)

// File extensions
const (
	// extCSV is the extension that selects comma-separated parsing
	extCSV = ".csv"
	// extXLSX is the spreadsheet extension used for exports
	extXLSX = ".xlsx"
	// extGZ is the gzip compression extension
	extGZ = ".gz"
	// extBZ2 is the bzip2 compression extension
	extBZ2 = ".bz2"
	// extXZ is the xz compression extension
	extXZ = ".xz"
	// extZSTD is the zstd compression extension
	extZSTD = ".zst"
)

// header is the first row of a delimited file, in file order.
type header []string

// record is one data row of a delimited file.
type record []string

// columnType is the inferred scalar type of one column.
type columnType int

const (
	// columnTypeBoolean holds only true/false tokens
	columnTypeBoolean columnType = iota
	// columnTypeInteger holds only integer tokens
	columnTypeInteger
	// columnTypeReal holds numeric tokens with at least one non-integer
	columnTypeReal
	// columnTypeText holds everything else; the fallback type
	columnTypeText
)

// sqlType returns the declared SQLite column type for the inferred type.
func (ct columnType) sqlType() string {
	switch ct {
	case columnTypeBoolean:
		return "BOOLEAN"
	case columnTypeInteger:
		return "INTEGER"
	case columnTypeReal:
		return "REAL"
	default:
		return "TEXT"
	}
}

// String returns the lower-case name of the column type.
func (ct columnType) String() string {
	switch ct {
	case columnTypeBoolean:
		return "boolean"
	case columnTypeInteger:
		return "integer"
	case columnTypeReal:
		return "real"
	default:
		return "text"
	}
}

// columnInfo pairs a column name with its inferred type. Column order is the
// header order of the source file and is significant.
type columnInfo struct {
	name string
	typ  columnType
}
