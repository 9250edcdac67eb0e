package category

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlog/spendlog/internal/ledger"
	"github.com/spendlog/spendlog/internal/model"
)

type failingReader struct{}

func (failingReader) ReadAll() ([]model.Expense, error) {
	return nil, errors.New("disk on fire")
}

func TestNew_Dedupes(t *testing.T) {
	s := New("food", " food ", "", "rent", "food")
	assert.Equal(t, []string{"food", "rent"}, s.All())
	assert.Equal(t, "food, rent", s.String())
}

func TestAdd(t *testing.T) {
	s := New(Defaults...)
	assert.False(t, s.Add("food"))
	assert.True(t, s.Add("pets"))
	assert.Contains(t, s.All(), "pets")
	assert.Equal(t, "pets", s.All()[len(s.All())-1])
}

func TestLoad_NoStore(t *testing.T) {
	store := ledger.NewStore(filepath.Join(t.TempDir(), "expenses.csv"))
	s, err := Load(store, []string{"rent"})
	require.NoError(t, err)
	assert.Equal(t, []string{"food", "transportation", "entertainment", "other", "rent"}, s.All())
}

func TestLoad_RecordedCategories(t *testing.T) {
	store := ledger.NewStore(filepath.Join(t.TempDir(), "expenses.csv"))
	for _, c := range []string{"food", "gym", "books", "gym"} {
		require.NoError(t, store.Append(model.Expense{
			Date:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Amount:      decimal.NewFromInt(1),
			Category:    c,
			Description: "x",
		}))
	}

	s, err := Load(store, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"food", "transportation", "entertainment", "other", "gym", "books"}, s.All())
}

func TestLoad_ReadError(t *testing.T) {
	_, err := Load(failingReader{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}
