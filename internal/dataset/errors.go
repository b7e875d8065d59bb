package dataset

import "fmt"

// NotFoundError reports a missing trajectory file. Sweep-style analysis
// skips the coefficient; strict existence checks treat it as fatal.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("trajectory file not found: %s", e.Path)
}

// FormatError reports a malformed data file. Always fatal: the numeric
// checks require a rectangular, fully parsed array.
type FormatError struct {
	Path   string
	Line   int // 1-based, 0 when the problem is not tied to a line
	Reason string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}
