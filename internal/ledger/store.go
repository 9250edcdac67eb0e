package ledger

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spendlog/spendlog/internal/model"
)

// DefaultFile is the store file name used when no path is configured.
const DefaultFile = "expenses.csv"

// Store is an append-only expense file. Every call opens the file, does its
// work and closes it again; nothing is cached between calls. A Store is not
// safe for concurrent writers, in this or any other process.
type Store struct {
	path string
}

// NewStore returns a Store backed by path, or DefaultFile if path is empty.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultFile
	}
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the backing file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Append writes one expense to the end of the store, creating the file and
// its header row first if needed.
func (s *Store) Append(e model.Expense) error {
	return s.AppendAll([]model.Expense{e})
}

// AppendAll writes expenses to the end of the store under a single open.
// An empty batch does nothing and does not create the file.
func (s *Store) AppendAll(expenses []model.Expense) (err error) {
	if len(expenses) == 0 {
		return nil
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &IOError{Op: "creating directory for", Path: s.path, Err: err}
		}
	}

	// A zero-length file has no header either.
	needsHeader := false
	info, err := os.Stat(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		needsHeader = true
	case err != nil:
		return &IOError{Op: "checking", Path: s.path, Err: err}
	default:
		needsHeader = info.Size() == 0
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return &IOError{Op: "opening", Path: s.path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "closing", Path: s.path, Err: cerr}
		}
	}()

	write := AppendExpenses
	if needsHeader {
		write = WriteExpenses
	}
	if err := write(f, expenses); err != nil {
		return &IOError{Op: "appending to", Path: s.path, Err: err}
	}
	return nil
}

// ReadAll returns every expense in file order. It returns ErrNotFound if the
// store was never created, a *ParseError for the first malformed record, and
// an *IOError for anything else.
func (s *Store) ReadAll() ([]model.Expense, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &IOError{Op: "opening", Path: s.path, Err: err}
	}
	defer f.Close()

	expenses, err := ReadExpenses(f)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = s.path
			return nil, pe
		}
		return nil, &IOError{Op: "reading", Path: s.path, Err: err}
	}
	return expenses, nil
}
