package ledger

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by ReadAll when the store file has never been
// created. It is the "no data yet" state, not a failure.
var ErrNotFound = errors.New("expense store not found")

// IOError wraps a failure to open, read, write, or close the store file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports a header or row that does not decode into an expense.
// Line is the 1-based line in the file where the bad record starts.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
