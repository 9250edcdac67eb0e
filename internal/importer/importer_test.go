package importer

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlog/spendlog/internal/model"
)

const chaseHeader = "Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #\n"

func readChase(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("../../testdata/chase_checking.csv")
	require.NoError(t, err)
	return string(data)
}

func TestChaseParser_Parse(t *testing.T) {
	p := &ChaseParser{}
	txns, err := p.Parse(strings.NewReader(readChase(t)))
	require.NoError(t, err)
	assert.Len(t, txns, 6)

	assert.Equal(t, "GITHUB *PRO SUBSCRIPTION", txns[0].Description)
	assert.Equal(t, "-4.00", txns[0].Amount.StringFixed(2))
	assert.Equal(t, 2025, txns[0].Date.Year())
	assert.Equal(t, 1, int(txns[0].Date.Month()))
	assert.Equal(t, 3, txns[0].Date.Day())

	assert.Equal(t, "ACME CONSULTING INVOICE 1042", txns[3].Description)
	assert.True(t, txns[3].Amount.IsPositive())
	assert.Equal(t, "3500.00", txns[3].Amount.StringFixed(2))
}

func TestChaseParser_EmptyFile(t *testing.T) {
	p := &ChaseParser{}
	txns, err := p.Parse(strings.NewReader(chaseHeader))
	require.NoError(t, err)
	assert.Nil(t, txns)
}

func TestChaseParser_BadDate(t *testing.T) {
	p := &ChaseParser{}
	_, err := p.Parse(strings.NewReader(chaseHeader + "DEBIT,NOTADATE,desc,-4.00,ACH_DEBIT,100.00,\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing date")
}

func TestChaseParser_BadAmount(t *testing.T) {
	p := &ChaseParser{}
	_, err := p.Parse(strings.NewReader(chaseHeader + "DEBIT,01/03/2025,desc,NOTANUMBER,ACH_DEBIT,100.00,\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing amount")
}

func TestChaseParser_Reference(t *testing.T) {
	p := &ChaseParser{}
	txns, err := p.Parse(strings.NewReader(readChase(t)))
	require.NoError(t, err)
	assert.Equal(t, "20250103_4_GITHUBPROS", txns[0].Reference)
}

func TestGenericParser_Parse(t *testing.T) {
	data := "Amount,Date,Description,Balance\n-12.50,2024-01-01,lunch,100\n250.00,2024-01-02,salary,350\n"
	p := &GenericParser{}
	txns, err := p.Parse(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, "lunch", txns[0].Description)
	assert.Equal(t, "-12.50", txns[0].Amount.StringFixed(2))
	assert.Equal(t, "20240101_12.5_lunch", txns[0].Reference)
}

func TestGenericParser_MissingColumn(t *testing.T) {
	p := &GenericParser{}
	_, err := p.Parse(strings.NewReader("date,amount\n2024-01-01,-1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"description"`)
}

func TestGenericParser_BadRow(t *testing.T) {
	p := &GenericParser{}
	_, err := p.Parse(strings.NewReader("date,amount,description\n2024-01-01,-1,ok\n2024-01-02,abc,bad\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
}

func TestGenericParser_Empty(t *testing.T) {
	p := &GenericParser{}
	txns, err := p.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, txns)
}

func TestToExpenses(t *testing.T) {
	p := &ChaseParser{}
	txns, err := p.Parse(strings.NewReader(readChase(t)))
	require.NoError(t, err)

	expenses := ToExpenses(txns, "bank")
	require.Len(t, expenses, 5, "the one credit is dropped")
	for _, e := range expenses {
		assert.Equal(t, "bank", e.Category)
		assert.True(t, e.Amount.IsPositive(), "%s should be recorded as a positive amount", e.Description)
		assert.NotEqual(t, "ACME CONSULTING INVOICE 1042", e.Description)
	}
	assert.Equal(t, "127.50", expenses[1].Amount.StringFixed(2))
	assert.Equal(t, "WHOLEFDS MKT 10234", expenses[1].Description)
}

func TestSkipRecorded(t *testing.T) {
	p := &ChaseParser{}
	txns, err := p.Parse(strings.NewReader(readChase(t)))
	require.NoError(t, err)

	// Category and amount precision play no part in matching.
	recorded := ToExpenses(txns, "bank")[:2]
	recorded[0].Category = "subscriptions"
	recorded[0].Amount = recorded[0].Amount.Truncate(0)

	fresh, skipped := SkipRecorded(txns, recorded)
	assert.Equal(t, 2, skipped)
	require.Len(t, fresh, 4)
	assert.Len(t, ToExpenses(fresh, "bank"), 3)
}

func TestSkipRecorded_Nothing(t *testing.T) {
	p := &ChaseParser{}
	txns, err := p.Parse(strings.NewReader(readChase(t)))
	require.NoError(t, err)

	fresh, skipped := SkipRecorded(txns, nil)
	assert.Zero(t, skipped)
	assert.Equal(t, txns, fresh)
}

func TestSkipRecorded_RepeatedPurchase(t *testing.T) {
	data := "date,description,amount\n2024-03-01,COFFEE BAR,-3.50\n2024-03-01,COFFEE BAR,-3.50\n"
	txns, err := (&GenericParser{}).Parse(strings.NewReader(data))
	require.NoError(t, err)

	fresh, skipped := SkipRecorded(txns, ToExpenses(txns[:1], "coffee"))
	assert.Equal(t, 1, skipped)
	assert.Len(t, fresh, 1)
}

func TestSkipRecorded_CreditsKept(t *testing.T) {
	data := "date,description,amount\n2024-03-01,REFUND,12.00\n"
	txns, err := (&GenericParser{}).Parse(strings.NewReader(data))
	require.NoError(t, err)

	recorded := []model.Expense{{Date: txns[0].Date, Amount: txns[0].Amount, Category: "x", Description: "REFUND"}}
	fresh, skipped := SkipRecorded(txns, recorded)
	assert.Zero(t, skipped)
	assert.Len(t, fresh, 1)
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Get("nonexistent"))
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	r := NewRegistry()
	r.Register(&ChaseParser{})
	assert.NotNil(t, r.Get("Chase"))
	assert.NotNil(t, r.Get("CHASE"))
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&ChaseParser{})
	assert.Panics(t, func() { r.Register(&ChaseParser{}) })
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{"chase", "generic"}, r.Formats())
}
