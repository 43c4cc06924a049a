package textq

import (
	"fmt"
	"path/filepath"
	"strings"
)

// TableNameFromPath derives a table name from a file path. The name is the
// path's base name without its extension (a compression extension is stripped
// first), with every character outside letters, digits, and underscore
// replaced by underscore. The derived name is the table's identity in the
// store: importing two different files that normalize to the same name
// replaces one table with the other.
//
// Returns ErrInvalidName when normalization yields an empty identifier
// (for example a path whose base name is only an extension).
func TableNameFromPath(path string) (string, error) {
	fileName := filepath.Base(path)
	for _, ext := range []string{extGZ, extBZ2, extXZ, extZSTD} {
		if strings.HasSuffix(strings.ToLower(fileName), ext) {
			fileName = fileName[:len(fileName)-len(ext)]
			break
		}
	}
	fileName = strings.TrimSuffix(fileName, filepath.Ext(fileName))

	name, err := sanitizeIdentifier(fileName)
	if err != nil {
		return "", fmt.Errorf("%w: cannot derive table name from %q", ErrInvalidName, path)
	}
	return name, nil
}

// sanitizeIdentifier normalizes raw into the safe identifier set: letters,
// digits, and underscore. Spaces, hyphens, and any other character become
// underscore. An input that normalizes to underscores only is rejected.
func sanitizeIdentifier(raw string) (string, error) {
	var b strings.Builder
	hasWord := false
	for _, r := range raw {
		if isSafeIdentifierRune(r) {
			b.WriteRune(r)
			if r != '_' {
				hasWord = true
			}
			continue
		}
		b.WriteRune('_')
	}
	if !hasWord {
		return "", ErrInvalidName
	}
	return b.String(), nil
}

// isSafeIdentifier reports whether name consists solely of safe identifier
// runes. Names that fail this check never reach identifier position in a
// statement.
func isSafeIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !isSafeIdentifierRune(r) {
			return false
		}
	}
	return true
}

func isSafeIdentifierRune(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '_'
}

// quoteIdentifier brackets a name for identifier position. Callers must
// whitelist the name first, either against the live catalog or with
// isSafeIdentifier; the bracket form itself is not an escape mechanism.
func quoteIdentifier(name string) string {
	return "[" + name + "]"
}
