package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"github.com/spendlog/spendlog/internal/ledger"
	"github.com/spendlog/spendlog/internal/model"
	"github.com/spendlog/spendlog/internal/summary"
)

const (
	msgNoStore   = "No expense file found. Add some expenses first!"
	msgNoRecords = "No expenses recorded yet."
	msgSaved     = "Expense saved successfully!"
)

var (
	labelColor    = color.New(color.Bold)
	positiveColor = color.New(color.FgGreen)
	negativeColor = color.New(color.FgHiRed, color.Underline)
)

func colorAmount(d decimal.Decimal, text string) string {
	if d.IsNegative() {
		return negativeColor.Sprint(text)
	}
	return positiveColor.Sprint(text)
}

func printExpense(w io.Writer, e model.Expense) {
	fmt.Fprintf(w, "Date: %s\n", e.Date.Format(model.DateFormat))
	fmt.Fprintf(w, "Amount: %s\n", colorAmount(e.Amount, ledger.FormatAmount(e.Amount)))
	fmt.Fprintf(w, "Category: %s\n", labelColor.Sprint(e.Category))
	fmt.Fprintf(w, "Description: %s\n", e.Description)
	fmt.Fprintln(w)
}

// formatTotal prints at least two decimal places but never rounds away
// precision the amounts were recorded with.
func formatTotal(d decimal.Decimal) string {
	if d.Exponent() > -2 {
		return d.StringFixed(2)
	}
	return ledger.FormatAmount(d)
}

func printTotal(w io.Writer, ct summary.CategoryTotal) {
	fmt.Fprintf(w, "Total spent on %s: %s\n", labelColor.Sprint(ct.Category), colorAmount(ct.Total, formatTotal(ct.Total)))
}
