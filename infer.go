package textq

import (
	"strconv"
	"strings"
)

// isBooleanToken checks if a string value is a boolean literal. Only the
// words true and false count; 0 and 1 stay integers.
func isBooleanToken(value string) bool {
	return strings.EqualFold(value, "true") || strings.EqualFold(value, "false")
}

// inferColumnType infers the narrowest common scalar type for a column from
// its string values. Precedence is boolean, then integer, then real, then
// text: a column holding any non-numeric, non-boolean token is text, and a
// column mixing booleans with numbers has no common scalar type and falls
// back to text. Empty values are skipped; they become NULL within whatever
// type the rest of the column infers.
func inferColumnType(values []string) columnType {
	hasBoolean := false
	hasInteger := false
	hasReal := false
	hasText := false

	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		if isBooleanToken(value) {
			hasBoolean = true
			continue
		}

		if _, err := strconv.ParseInt(value, 10, 64); err == nil {
			hasInteger = true
			continue
		}

		if _, err := strconv.ParseFloat(value, 64); err == nil {
			hasReal = true
			continue
		}

		// If any value is text, the whole column is text
		hasText = true
		break
	}

	if hasText {
		return columnTypeText
	}
	if hasBoolean && (hasInteger || hasReal) {
		return columnTypeText
	}
	if hasReal {
		return columnTypeReal
	}
	if hasInteger {
		return columnTypeInteger
	}
	if hasBoolean {
		return columnTypeBoolean
	}

	// Default to TEXT if no values were found
	return columnTypeText
}

// inferColumns infers column information from the header and data records.
// Column order follows the header.
func inferColumns(h header, records []record) []columnInfo {
	columnCount := len(h)
	if columnCount == 0 {
		return nil
	}

	columns := make([]columnInfo, columnCount)
	for i, name := range h {
		columns[i] = columnInfo{
			name: name,
			typ:  columnTypeText,
		}
	}

	if len(records) == 0 {
		return columns
	}

	for i := range columnCount {
		values := make([]string, 0, len(records))
		for _, rec := range records {
			if i < len(rec) {
				values = append(values, rec[i])
			}
		}
		columns[i].typ = inferColumnType(values)
	}

	return columns
}
