package ledger

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

// Header is the CSV header for expenses.csv.
const Header = "date,amount,category,description"

const (
	numFields   = 4
	colDate     = 0
	colAmount   = 1
	colCategory = 2
	colDesc     = 3
)

// storedDateFormat accepts the unpadded dates ("2024-1-5") that older
// files contain as well as model.DateFormat.
const storedDateFormat = "2006-1-2"

var headerFields = strings.Split(Header, ",")

// Columns holds the row position of date, amount, category and description.
type Columns [numFields]int

// ParseHeader resolves column positions from a header row. Columns may come
// in any order and unknown columns are ignored, but all four must be present.
func ParseHeader(header []string) (Columns, error) {
	cols := Columns{-1, -1, -1, -1}
	for i, name := range header {
		name = strings.TrimSpace(name)
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		for f, want := range headerFields {
			if name == want && cols[f] < 0 {
				cols[f] = i
			}
		}
	}

	var missing []string
	for f, pos := range cols {
		if pos < 0 {
			missing = append(missing, headerFields[f])
		}
	}
	if len(missing) > 0 {
		return Columns{}, fmt.Errorf("header missing column(s): %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

// ReadExpenses reads all expenses from an expenses.csv reader. It stops at the
// first record that does not decode and returns a *ParseError for it.
func ReadExpenses(r io.Reader) ([]model.Expense, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, csvError(err)
	}
	cols, err := ParseHeader(header)
	if err != nil {
		return nil, &ParseError{Line: 1, Err: err}
	}

	var expenses []model.Expense
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvError(err)
		}

		line, _ := cr.FieldPos(0)
		if len(rec) != len(header) {
			return nil, &ParseError{Line: line, Err: fmt.Errorf("expected %d fields, got %d", len(header), len(rec))}
		}
		e, err := UnmarshalExpense(rec, cols)
		if err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

func csvError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ParseError{Line: pe.StartLine, Err: pe.Err}
	}
	return fmt.Errorf("reading expenses CSV: %w", err)
}

// WriteExpenses writes expenses to an expenses.csv writer (including header).
func WriteExpenses(w io.Writer, expenses []model.Expense) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(headerFields); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range expenses {
		if err := cw.Write(MarshalExpense(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// AppendExpenses appends expenses to an existing expenses.csv writer (no header).
func AppendExpenses(w io.Writer, expenses []model.Expense) error {
	cw := csv.NewWriter(w)

	for i, e := range expenses {
		if err := cw.Write(MarshalExpense(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalExpense converts an Expense to a CSV row ([]string).
func MarshalExpense(e model.Expense) []string {
	row := make([]string, numFields)
	row[colDate] = e.Date.Format(model.DateFormat)
	row[colAmount] = FormatAmount(e.Amount)
	row[colCategory] = e.Category
	row[colDesc] = e.Description
	return row
}

// UnmarshalExpense converts a CSV row laid out as cols to an Expense.
func UnmarshalExpense(record []string, cols Columns) (model.Expense, error) {
	for _, pos := range cols {
		if pos >= len(record) {
			return model.Expense{}, fmt.Errorf("expected at least %d fields, got %d", pos+1, len(record))
		}
	}

	rawDate := strings.TrimSpace(record[cols[colDate]])
	date, err := time.Parse(storedDateFormat, rawDate)
	if err != nil {
		return model.Expense{}, fmt.Errorf("parsing date %q: %w", rawDate, err)
	}

	rawAmount := strings.TrimSpace(record[cols[colAmount]])
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return model.Expense{}, fmt.Errorf("parsing amount %q: %w", rawAmount, err)
	}

	return model.Expense{
		Date:        date,
		Amount:      amount,
		Category:    record[cols[colCategory]],
		Description: record[cols[colDesc]],
	}, nil
}

// FormatAmount renders d with the number of decimal places it carries, so
// "12.50" is written back as "12.50" rather than "12.5".
func FormatAmount(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}
