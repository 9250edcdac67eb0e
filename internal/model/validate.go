package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrEmpty is returned for a required field left blank.
var ErrEmpty = errors.New("value cannot be empty")

// FieldError reports which input field failed validation.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// ParseDate parses a YYYY-MM-DD calendar date. Impossible dates such as
// 2024-02-30 are rejected.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrEmpty
	}
	d, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return d, nil
}

// ParseAmount parses a decimal amount, keeping the digits as entered.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, ErrEmpty
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return d, nil
}

// ParseText trims s and rejects an empty result.
func ParseText(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmpty
	}
	return s, nil
}

// ParseExpense builds an Expense from raw user input. The returned error is
// always a *FieldError naming the first bad field.
func ParseExpense(date, amount, category, description string) (Expense, error) {
	d, err := ParseDate(date)
	if err != nil {
		return Expense{}, &FieldError{Field: "date", Err: err}
	}
	a, err := ParseAmount(amount)
	if err != nil {
		return Expense{}, &FieldError{Field: "amount", Err: err}
	}
	c, err := ParseText(category)
	if err != nil {
		return Expense{}, &FieldError{Field: "category", Err: err}
	}
	desc, err := ParseText(description)
	if err != nil {
		return Expense{}, &FieldError{Field: "description", Err: err}
	}
	return Expense{Date: d, Amount: a, Category: c, Description: desc}, nil
}
