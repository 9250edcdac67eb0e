// Package importer turns bank statement exports into expenses.
package importer

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendlog/spendlog/internal/model"
)

// Parser converts a bank CSV file into BankTransactions.
type Parser interface {
	Parse(r io.Reader) ([]model.BankTransaction, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Formats lists the registered format names, sorted.
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.parsers))
	for k := range r.parsers {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&ChaseParser{})
	r.Register(&GenericParser{})
	return r
}

// ToExpenses keeps the debits of txns and records each as an expense of its
// absolute amount under category. Credits (money in) are dropped.
func ToExpenses(txns []model.BankTransaction, category string) []model.Expense {
	var expenses []model.Expense
	for _, txn := range txns {
		if !txn.IsDebit() {
			continue
		}
		expenses = append(expenses, model.Expense{
			Date:        txn.Date,
			Amount:      txn.Amount.Abs(),
			Category:    category,
			Description: strings.TrimSpace(txn.Description),
		})
	}
	return expenses
}

// makeRef keys a transaction by date, absolute amount and the first ten
// alphanumerics of its description, e.g. 20250103_4_GITHUBPROS.
func makeRef(date time.Time, desc string, amount decimal.Decimal) string {
	prefix := strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, desc)
	if len(prefix) > 10 {
		prefix = prefix[:10]
	}
	return fmt.Sprintf("%s_%s_%s", date.Format("20060102"), amount.Abs().String(), prefix)
}

// ExpenseRef returns the reference a debit imported as e would carry.
func ExpenseRef(e model.Expense) string {
	return makeRef(e.Date, e.Description, e.Amount)
}

// SkipRecorded drops the debits of txns that are already in recorded, so
// importing the same statement twice adds nothing. Each recorded expense
// cancels at most one debit: a statement with two identical purchases on a
// day still imports the second when only one was recorded.
func SkipRecorded(txns []model.BankTransaction, recorded []model.Expense) ([]model.BankTransaction, int) {
	seen := make(map[string]int, len(recorded))
	for _, e := range recorded {
		seen[ExpenseRef(e)]++
	}

	var fresh []model.BankTransaction
	skipped := 0
	for _, txn := range txns {
		if txn.IsDebit() && seen[txn.Reference] > 0 {
			seen[txn.Reference]--
			skipped++
			continue
		}
		fresh = append(fresh, txn)
	}
	return fresh, skipped
}
