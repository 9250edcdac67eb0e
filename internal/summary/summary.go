// Package summary totals expenses per category.
package summary

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/spendlog/spendlog/internal/model"
)

// CategoryTotal is the summed amount of one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
	Count    int
}

// Summary holds per-category totals in order of first occurrence.
type Summary struct {
	Totals []CategoryTotal
	index  map[string]int
}

// Order selects how Sorted arranges categories.
type Order string

const (
	OrderFirstSeen Order = "first"
	OrderName      Order = "name"
	OrderTotal     Order = "total"
)

// ParseOrder validates an order name; the empty string means OrderFirstSeen.
func ParseOrder(s string) (Order, error) {
	switch Order(s) {
	case "", OrderFirstSeen:
		return OrderFirstSeen, nil
	case OrderName, OrderTotal:
		return Order(s), nil
	}
	return "", fmt.Errorf("unknown sort order %q (want first, name or total)", s)
}

// Compute sums amounts per category. Categories are matched by exact text.
// Decimal addition is exact, so the result does not depend on input order.
func Compute(expenses []model.Expense) *Summary {
	s := &Summary{index: make(map[string]int)}
	for _, e := range expenses {
		i, seen := s.index[e.Category]
		if !seen {
			i = len(s.Totals)
			s.index[e.Category] = i
			s.Totals = append(s.Totals, CategoryTotal{Category: e.Category, Total: decimal.Zero})
		}
		s.Totals[i].Total = s.Totals[i].Total.Add(e.Amount)
		s.Totals[i].Count++
	}
	return s
}

// Len returns the number of categories.
func (s *Summary) Len() int {
	return len(s.Totals)
}

// Get returns the total for category.
func (s *Summary) Get(category string) (CategoryTotal, bool) {
	i, ok := s.index[category]
	if !ok {
		return CategoryTotal{}, false
	}
	return s.Totals[i], true
}

// Grand returns the sum over all categories.
func (s *Summary) Grand() decimal.Decimal {
	total := decimal.Zero
	for _, ct := range s.Totals {
		total = total.Add(ct.Total)
	}
	return total
}

// Sorted returns a copy of the totals in the requested order. Ties under
// OrderTotal keep first-occurrence order.
func (s *Summary) Sorted(order Order) []CategoryTotal {
	out := make([]CategoryTotal, len(s.Totals))
	copy(out, s.Totals)
	switch order {
	case OrderName:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	case OrderTotal:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Total.GreaterThan(out[j].Total) })
	}
	return out
}
