package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the textual form of an expense date.
const DateFormat = "2006-01-02"

// Expense is one recorded spending entry (a row in expenses.csv).
type Expense struct {
	Date        time.Time
	Amount      decimal.Decimal // no sign constraint; exponent kept as entered
	Category    string
	Description string
}
