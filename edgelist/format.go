package edgelist

import (
	"errors"
	"fmt"
	"strings"
)

// Format names a graph text format.
type Format string

const (
	// FormatEdgeList is "u v w" per line, 0-based ids.
	FormatEdgeList Format = "edgelist"
	// FormatDIMACS is the DIMACS shortest-path format, 1-based ids.
	FormatDIMACS Format = "dimacs"
)

// Sentinel errors.
var (
	// ErrUnknownFormat indicates an unrecognised format or output name.
	ErrUnknownFormat = errors.New("edgelist: unknown format")

	// ErrSyntax indicates a malformed input line.
	ErrSyntax = errors.New("edgelist: syntax error")
)

// ParseFormat maps a case-insensitive name to a Format. "" and "el" map to
// FormatEdgeList, "gr" to FormatDIMACS (the usual file extensions).
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "edgelist", "el", "txt":
		return FormatEdgeList, nil
	case "dimacs", "gr":
		return FormatDIMACS, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// syntaxError wraps ErrSyntax with a line number.
func syntaxError(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrSyntax, line, fmt.Sprintf(format, args...))
}
