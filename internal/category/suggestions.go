// Package category builds the per-session list of suggested category names.
// Any non-empty name may be recorded; suggestions are never persisted.
package category

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spendlog/spendlog/internal/ledger"
	"github.com/spendlog/spendlog/internal/model"
)

// Reader is the part of ledger.Store that Load needs.
type Reader interface {
	ReadAll() ([]model.Expense, error)
}

// Suggestions is an ordered, de-duplicated list of category names.
type Suggestions struct {
	names  []string
	byName map[string]bool
}

// New returns Suggestions holding names in order, skipping blanks and repeats.
func New(names ...string) *Suggestions {
	s := &Suggestions{byName: make(map[string]bool)}
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Load returns the defaults, then configured names, then every category
// already recorded in the store. A store that does not exist yet is fine.
func Load(store Reader, configured []string) (*Suggestions, error) {
	s := New(Defaults...)
	for _, n := range configured {
		s.Add(n)
	}

	expenses, err := store.ReadAll()
	if err != nil && !errors.Is(err, ledger.ErrNotFound) {
		return nil, fmt.Errorf("reading recorded categories: %w", err)
	}
	for _, e := range expenses {
		s.Add(e.Category)
	}
	return s, nil
}

// All returns the suggested names.
func (s *Suggestions) All() []string {
	return s.names
}

// Add appends name if it is new and reports whether it was added.
func (s *Suggestions) Add(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || s.byName[name] {
		return false
	}
	s.byName[name] = true
	s.names = append(s.names, name)
	return true
}

// String joins the names for display.
func (s *Suggestions) String() string {
	return strings.Join(s.names, ", ")
}
