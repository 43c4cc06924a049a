package textq

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// exportSheet is the single sheet exported result sets are written to.
const exportSheet = "Sheet1"

// ExportXLSX serializes a result set to a single-sheet spreadsheet file:
// header row from the result's column names, then the data rows in result
// order, each value in its natural representation from the inferred column
// type. The path is normalized to an .xlsx extension; the normalized path is
// returned.
//
// Exporting an empty or absent result set is a precondition failure
// (ErrEmptyResult) and writes nothing. An unwritable path is ErrIO.
func ExportXLSX(rs *ResultSet, path string) (string, error) {
	if rs.Empty() {
		return "", fmt.Errorf("%w: nothing to export", ErrEmptyResult)
	}

	path = normalizeXLSXPath(path)

	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck // in-memory workbook

	headerRow := make([]any, len(rs.Columns))
	for i, name := range rs.Columns {
		headerRow[i] = name
	}
	if err := f.SetSheetRow(exportSheet, "A1", &headerRow); err != nil {
		return "", fmt.Errorf("%w: write header: %w", ErrIO, err)
	}

	for i := range rs.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", fmt.Errorf("%w: row %d: %w", ErrIO, i+2, err)
		}
		if err := f.SetSheetRow(exportSheet, cell, &rs.Rows[i]); err != nil {
			return "", fmt.Errorf("%w: row %d: %w", ErrIO, i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("%w: save %s: %w", ErrIO, path, err)
	}
	return path, nil
}

// normalizeXLSXPath appends the spreadsheet extension unless already present.
func normalizeXLSXPath(path string) string {
	if strings.HasSuffix(strings.ToLower(path), extXLSX) {
		return path
	}
	return path + extXLSX
}
