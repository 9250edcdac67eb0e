package commands

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spendlog/spendlog/internal/gitops"
	"github.com/spendlog/spendlog/internal/ledger"
	"github.com/spendlog/spendlog/internal/model"
	"github.com/spendlog/spendlog/internal/summary"
)

// saveExpense appends e to the store and commits it when configured to.
func (a *app) saveExpense(w io.Writer, e model.Expense) error {
	if err := a.store.Append(e); err != nil {
		a.log.Error("appending expense", "path", a.store.Path(), "error", err)
		return fmt.Errorf("saving expense: %w", err)
	}
	a.log.Info("appended expense", "path", a.store.Path(), "category", e.Category, "amount", ledger.FormatAmount(e.Amount))
	fmt.Fprintln(w, msgSaved)

	a.commitStore("expense: " + e.Description)
	return nil
}

// viewExpenses prints every recorded expense.
func (a *app) viewExpenses(w io.Writer) error {
	expenses, err := a.readExpenses(w)
	if err != nil || expenses == nil {
		return err
	}
	for _, e := range expenses {
		printExpense(w, e)
	}
	return nil
}

// analyzeExpenses prints one total per category.
func (a *app) analyzeExpenses(w io.Writer, order summary.Order, withGrand bool) error {
	expenses, err := a.readExpenses(w)
	if err != nil || expenses == nil {
		return err
	}

	s := summary.Compute(expenses)
	a.log.Debug("computed totals", "categories", s.Len())
	for _, ct := range s.Sorted(order) {
		printTotal(w, ct)
	}
	if withGrand {
		grand := s.Grand()
		fmt.Fprintf(w, "Total spent: %s\n", colorAmount(grand, formatTotal(grand)))
	}
	return nil
}

// readExpenses loads the store, printing the empty-state message itself and
// returning nil expenses when there is nothing to show.
func (a *app) readExpenses(w io.Writer) ([]model.Expense, error) {
	expenses, err := a.store.ReadAll()
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		fmt.Fprintln(w, msgNoStore)
		return nil, nil
	case err != nil:
		a.log.Error("reading expenses", "path", a.store.Path(), "error", err)
		return nil, fmt.Errorf("reading expenses: %w", err)
	}
	a.log.Debug("read expenses", "path", a.store.Path(), "rows", len(expenses))

	if len(expenses) == 0 {
		fmt.Fprintln(w, msgNoRecords)
		return nil, nil
	}
	return expenses, nil
}

// commitStore commits the store file if git.auto_commit is on. Failures are
// logged, never returned: the expense is already saved.
func (a *app) commitStore(message string) {
	if !a.cfg.Git.AutoCommit {
		return
	}
	path, err := filepath.Abs(a.store.Path())
	if err != nil {
		a.log.Warn("resolving store path", "error", err)
		return
	}
	dir := filepath.Dir(path)
	if !gitops.IsRepo(dir) {
		a.log.Warn("git.auto_commit is set but the store is not in a git repository", "dir", dir)
		return
	}
	hash, err := gitops.Commit(dir, message, a.cfg.Git.AuthorName, a.cfg.Git.AuthorEmail, filepath.Base(path))
	if err != nil {
		a.log.Error("committing expense store", "error", err)
		return
	}
	a.log.Info("committed expense store", "commit", hash)
}
