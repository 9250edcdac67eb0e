package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankTransaction represents a parsed bank CSV row.
type BankTransaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // negative = money out, positive = money in
	Reference   string // see importer.SkipRecorded
}

// IsDebit reports whether the transaction took money out of the account.
func (t BankTransaction) IsDebit() bool {
	return t.Amount.IsNegative()
}
