// Package ledger owns the cumulative transaction set: merging freshly
// imported batches into history with deduplication, splitting it into
// direction views, and aggregating category totals.
package ledger

import (
	"sort"

	"fjacquet/bank-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// Merge combines an existing transaction set with a newly imported batch
// and collapses duplicates by identity tuple, keeping the last occurrence
// in concatenation order. A re-imported transaction therefore takes the
// incoming record's Category, overwriting any label the prior copy carried.
// Merge is pure: neither input slice is modified.
func Merge(existing, incoming []models.Transaction) []models.Transaction {
	if len(existing) == 0 {
		return incoming
	}

	combined := make([]models.Transaction, 0, len(existing)+len(incoming))
	combined = append(combined, existing...)
	combined = append(combined, incoming...)

	lastIndex := make(map[string]int, len(combined))
	for i := range combined {
		lastIndex[combined[i].Key()] = i
	}

	merged := make([]models.Transaction, 0, len(lastIndex))
	for i := range combined {
		if lastIndex[combined[i].Key()] == i {
			merged = append(merged, combined[i])
		}
	}
	return merged
}

// SplitByDirection partitions transactions into debit and credit views.
// Both are read views over copies; mutating them does not touch the input.
func SplitByDirection(transactions []models.Transaction) (debits, credits []models.Transaction) {
	for _, tx := range transactions {
		switch {
		case tx.IsDebit():
			debits = append(debits, tx)
		case tx.IsCredit():
			credits = append(credits, tx)
		}
	}
	return debits, credits
}

// CategoryTotal is the summed amount for one category within a view.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// CategoryTotals groups a view's amounts by category and returns the totals
// sorted descending by amount. Equal amounts sort by category name so the
// order is deterministic.
func CategoryTotals(transactions []models.Transaction) []CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		sums[tx.Category] = sums[tx.Category].Add(tx.Amount)
	}

	totals := make([]CategoryTotal, 0, len(sums))
	for category, amount := range sums {
		totals = append(totals, CategoryTotal{Category: category, Amount: amount})
	}

	sort.Slice(totals, func(i, j int) bool {
		if !totals[i].Amount.Equal(totals[j].Amount) {
			return totals[i].Amount.GreaterThan(totals[j].Amount)
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}

// SumAmounts returns the total amount across a view.
func SumAmounts(transactions []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		total = total.Add(tx.Amount)
	}
	return total
}
