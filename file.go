package textq

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// delimiterForPath resolves the two-way delimiter policy: files with a .csv
// extension are comma-separated, everything else is semicolon-separated. A
// compression extension is stripped before the check, so report.csv.gz is
// still comma-separated. The policy is deliberately narrow; there is no
// content sniffing.
func delimiterForPath(path string) rune {
	fileName := strings.ToLower(filepath.Base(path))
	if ext := compressionFromPath(fileName).extension(); ext != "" {
		fileName = strings.TrimSuffix(fileName, ext)
	}
	if strings.HasSuffix(fileName, extCSV) {
		return commaDelimiter
	}
	return semicolonDelimiter
}

// parseFile reads a delimited file fully into memory and converts it to a
// typed tableData, using the extension-driven delimiter policy.
func parseFile(path string) (*tableData, error) {
	return parseFileDelimiter(path, delimiterForPath(path))
}

// parseFileDelimiter is parseFile with an explicit column delimiter,
// overriding the extension policy.
func parseFileDelimiter(path string, comma rune) (*tableData, error) {
	name, err := TableNameFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path) //nolint:gosec // the path is caller-supplied input by contract
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrIO, path, err)
	}
	defer f.Close()

	reader, closeReader, err := newDecompressor(f, compressionFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrIO, path, err)
	}
	defer closeReader() //nolint:errcheck // read side; nothing to recover

	rows, err := readDelimited(reader, comma)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}

	h, err := headerFromRow(rows[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}

	records := make([]record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, record(row))
	}

	return newTableData(name, h, records), nil
}

// readDelimited tokenizes the reader into rectangular rows. The first row
// fixes the field count; any later row with a different count is an error.
func readDelimited(reader io.Reader, comma rune) ([][]string, error) {
	r := csv.NewReader(reader)
	r.Comma = comma

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("no header row")
	}
	return rows, nil
}

// headerFromRow normalizes the header row into column identifiers. Each raw
// name passes through the same normalization as table names; an empty or
// duplicate identifier rejects the whole file, since the resulting table
// could not be addressed column by column.
func headerFromRow(row []string) (header, error) {
	h := make(header, 0, len(row))
	seen := make(map[string]struct{}, len(row))
	for i, raw := range row {
		name, err := sanitizeIdentifier(raw)
		if err != nil {
			return nil, fmt.Errorf("column %d: unusable name %q", i+1, raw)
		}
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("duplicate column name %q", name)
		}
		seen[name] = struct{}{}
		h = append(h, name)
	}
	return h, nil
}
