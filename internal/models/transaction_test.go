package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "plain", input: "125.50", expected: "125.5"},
		{name: "thousands separator", input: "1,264.98", expected: "1264.98"},
		{name: "multiple separators", input: "1,234,567.89", expected: "1234567.89"},
		{name: "surrounding whitespace", input: "  42.00 ", expected: "42"},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, amount.String())
		})
	}
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("05 Jan 2024")
	require.NoError(t, err)
	assert.Equal(t, 2024, date.Year())
	assert.Equal(t, time.January, date.Month())
	assert.Equal(t, 5, date.Day())

	// Surrounding whitespace is tolerated
	date, err = ParseDate("  17 Mar 2024 ")
	require.NoError(t, err)
	assert.Equal(t, 17, date.Day())

	// Anything outside the statement format is rejected
	_, err = ParseDate("2024-01-05")
	assert.Error(t, err)
	_, err = ParseDate("05 January 2024")
	assert.Error(t, err)
}

func TestDateCSVRoundTrip(t *testing.T) {
	original := NewDate(2024, time.February, 29)

	value, err := original.MarshalCSV()
	require.NoError(t, err)
	assert.Equal(t, "29 Feb 2024", value)

	var restored Date
	require.NoError(t, restored.UnmarshalCSV(value))
	assert.True(t, original.Equal(restored.Time))
}

func TestTransactionKey(t *testing.T) {
	tx := Transaction{
		Date:      NewDate(2024, time.January, 5),
		Details:   "Carrefour",
		Amount:    decimal.RequireFromString("125.50"),
		Direction: DirectionDebit,
		Status:    "Settled",
		Category:  "Groceries",
	}

	// Identity ignores the category label
	relabeled := tx
	relabeled.Category = CategoryUncategorized
	assert.Equal(t, tx.Key(), relabeled.Key())

	// Every identity field participates
	other := tx
	other.Status = "Pending"
	assert.NotEqual(t, tx.Key(), other.Key())

	other = tx
	other.Amount = decimal.RequireFromString("125.51")
	assert.NotEqual(t, tx.Key(), other.Key())
}

func TestDirectionHelpers(t *testing.T) {
	debit := Transaction{Direction: DirectionDebit}
	credit := Transaction{Direction: DirectionCredit}

	assert.True(t, debit.IsDebit())
	assert.False(t, debit.IsCredit())
	assert.True(t, credit.IsCredit())
	assert.False(t, credit.IsDebit())
}

func TestNormalizeDetails(t *testing.T) {
	assert.Equal(t, "carrefour", NormalizeDetails("  Carrefour "))
	assert.Equal(t, "netflix subscription", NormalizeDetails("NETFLIX Subscription"))
	assert.Equal(t, "", NormalizeDetails("   "))
}
