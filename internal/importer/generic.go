package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendlog/spendlog/internal/model"
)

// GenericParser reads a CSV with "date", "description" and "amount" columns
// in any order, dates as YYYY-MM-DD and money out as negative amounts.
type GenericParser struct{}

// Format returns the parser name.
func (p *GenericParser) Format() string { return "generic" }

// Parse reads the CSV and returns BankTransactions.
func (p *GenericParser) Parse(r io.Reader) ([]model.BankTransaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 0

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading generic CSV: %w", err)
	}

	cols := map[string]int{"date": -1, "description": -1, "amount": -1}
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if pos, ok := cols[name]; ok && pos < 0 {
			cols[name] = i
		}
	}
	for name, pos := range cols {
		if pos < 0 {
			return nil, fmt.Errorf("generic CSV header missing %q column", name)
		}
	}

	var txns []model.BankTransaction
	for row := 2; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading generic CSV: %w", err)
		}

		date, err := time.Parse(model.DateFormat, strings.TrimSpace(rec[cols["date"]]))
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing date %q: %w", row, rec[cols["date"]], err)
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(rec[cols["amount"]]))
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing amount %q: %w", row, rec[cols["amount"]], err)
		}
		desc := rec[cols["description"]]
		txns = append(txns, model.BankTransaction{
			Date:        date,
			Description: desc,
			Amount:      amount,
			Reference:   makeRef(date, desc, amount),
		})
	}
	return txns, nil
}
