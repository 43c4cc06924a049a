// Package textq turns delimited text files into queryable tables in a local
// SQLite store, searches a chosen column with a substring pattern, and exports
// the most recent result set to a spreadsheet file.
//
// textq keeps one on-disk SQLite database for the lifetime of the process.
// Each imported file becomes one table whose name is derived from the file
// name and whose column types are inferred from the data. Imports fully
// replace any previous table of the same name.
//
// # Basic Usage
//
//	store, err := textq.Open("database.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
//	ctx := context.Background()
//	table, err := store.LoadFile(ctx, "reports/sales report-2024.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rs, err := store.Search(ctx, table, "name", "al")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if _, err := textq.ExportXLSX(rs, "matches.xlsx"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Input files
//
// Input files are UTF-8 delimited text with the first row as header. Files
// with a .csv extension are read comma-separated; every other extension is
// read semicolon-separated. Compressed inputs (.gz, .bz2, .xz, .zst) are
// decompressed transparently; the compression extension is stripped before
// the delimiter check and the table-name derivation.
//
// # Failure classification
//
// Every operation returns a success value or an error classified by one of
// the package sentinels (ErrInvalidName, ErrIO, ErrParse, ErrUnknownTable,
// ErrUnknownColumn, ErrQuery, ErrEmptyResult). Use errors.Is to branch on
// the kind. No operation substitutes a default or partial result on failure.
package textq
