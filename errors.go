package textq

import "errors"

// Classified error kinds. Every core operation returns either a success value
// or an error wrapping exactly one of these sentinels, so callers can branch
// with errors.Is without parsing messages.
var (
	// ErrInvalidName indicates a file path whose base name normalizes to an
	// empty identifier, or an identifier outside the safe character set.
	ErrInvalidName = errors.New("textq: invalid identifier")

	// ErrIO indicates an unreadable input file or an unwritable output path.
	ErrIO = errors.New("textq: i/o failure")

	// ErrParse indicates input that cannot be tokenized into a rectangular
	// header/rows shape, or a header unusable as column identifiers.
	ErrParse = errors.New("textq: malformed delimited data")

	// ErrUnknownTable indicates a table that does not exist in the store at
	// call time.
	ErrUnknownTable = errors.New("textq: unknown table")

	// ErrUnknownColumn indicates a column that is not part of the named
	// table's live schema.
	ErrUnknownColumn = errors.New("textq: unknown column")

	// ErrQuery indicates an underlying statement execution fault.
	ErrQuery = errors.New("textq: query execution failed")

	// ErrEmptyResult indicates an export attempted on an empty or absent
	// result set.
	ErrEmptyResult = errors.New("textq: empty result set")
)
