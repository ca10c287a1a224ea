package ledger

import (
	"path/filepath"
	"testing"
	"time"

	"fjacquet/bank-ledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotLoadMissing(t *testing.T) {
	s := NewSnapshot(filepath.Join(t.TempDir(), "ledger.csv"), nil)
	transactions, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")
	s := NewSnapshot(path, nil)

	original := []models.Transaction{
		{
			Date:      models.NewDate(2024, time.January, 5),
			Details:   "Carrefour, Mall Branch",
			Amount:    decimal.RequireFromString("1264.98"),
			Direction: models.DirectionDebit,
			Status:    "Settled",
			Category:  "Groceries",
		},
		{
			Date:      models.NewDate(2024, time.February, 29),
			Details:   "Salary February",
			Amount:    decimal.RequireFromString("12500.00"),
			Direction: models.DirectionCredit,
			Status:    "Pending",
			Category:  models.CategoryUncategorized,
		},
	}
	require.NoError(t, s.Save(original))

	restored, err := NewSnapshot(path, nil).Load()
	require.NoError(t, err)
	require.Len(t, restored, len(original))

	for i := range original {
		assert.True(t, original[i].Date.Equal(restored[i].Date.Time), "Date differs at row %d", i)
		assert.Equal(t, original[i].Details, restored[i].Details)
		assert.True(t, original[i].Amount.Equal(restored[i].Amount), "Amount differs at row %d", i)
		assert.Equal(t, original[i].Direction, restored[i].Direction)
		assert.Equal(t, original[i].Status, restored[i].Status)
		assert.Equal(t, original[i].Category, restored[i].Category)
	}
}

func TestSnapshotOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")
	s := NewSnapshot(path, nil)

	first := []models.Transaction{
		{Date: models.NewDate(2024, time.January, 1), Details: "A", Amount: decimal.New(1, 0), Direction: models.DirectionDebit},
		{Date: models.NewDate(2024, time.January, 2), Details: "B", Amount: decimal.New(2, 0), Direction: models.DirectionDebit},
	}
	require.NoError(t, s.Save(first))

	second := first[:1]
	require.NoError(t, s.Save(second))

	restored, err := s.Load()
	require.NoError(t, err)
	require.Len(t, restored, 1)
	assert.Equal(t, "A", restored[0].Details)
}

func TestSnapshotCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "ledger.csv")
	s := NewSnapshot(path, nil)

	require.NoError(t, s.Save([]models.Transaction{
		{Date: models.NewDate(2024, time.January, 1), Details: "A", Amount: decimal.New(1, 0), Direction: models.DirectionDebit},
	}))

	restored, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, restored, 1)
}
