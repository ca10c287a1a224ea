// Package models provides the data structures used throughout the application.
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the fixed date format used by bank statement exports,
// e.g. "05 Jan 2024".
const DateLayout = "02 Jan 2006"

// Date wraps time.Time so gocsv serializes it in the statement format
// instead of RFC 3339.
type Date struct {
	time.Time
}

// NewDate creates a Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a statement date string ("DD Mon YYYY") into a Date.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

// MarshalCSV implements the gocsv TypeMarshaller interface.
func (d Date) MarshalCSV() (string, error) {
	return d.Format(DateLayout), nil
}

// UnmarshalCSV implements the gocsv TypeUnmarshaller interface.
func (d *Date) UnmarshalCSV(value string) error {
	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Transaction represents a single bank transaction from a statement export.
// The identity of a transaction for deduplication purposes is the tuple
// (Date, Details, Amount, Direction, Status); Category is a derived label
// and never part of the identity.
type Transaction struct {
	Date      Date            `csv:"Date"`         // Booking date in "DD Mon YYYY" format
	Details   string          `csv:"Details"`      // Free-text description from the statement
	Amount    decimal.Decimal `csv:"Amount"`       // Always positive; Direction carries the sign
	Direction string          `csv:"Debit/Credit"` // Either "Debit" or "Credit"
	Status    string          `csv:"Status"`       // Settlement state as reported by the bank
	Category  string          `csv:"Category"`     // Assigned spending category
}

// Key returns the deduplication key for the transaction. Two transactions
// with the same key are the same real-world transaction regardless of how
// they were categorized.
func (t *Transaction) Key() string {
	return strings.Join([]string{
		t.Date.Format(DateLayout),
		t.Details,
		t.Amount.String(),
		t.Direction,
		t.Status,
	}, "\x1f")
}

// IsDebit returns true if the transaction is outgoing money.
func (t *Transaction) IsDebit() bool {
	return t.Direction == DirectionDebit
}

// IsCredit returns true if the transaction is incoming money.
func (t *Transaction) IsCredit() bool {
	return t.Direction == DirectionCredit
}

// ParseAmount converts a statement amount string to a decimal value.
// Thousands separators (commas) are stripped before conversion.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	amount := strings.TrimSpace(amountStr)
	amount = strings.ReplaceAll(amount, ",", "")
	return decimal.NewFromString(amount)
}

// NormalizeDetails lowercases and trims a Details value so it can be
// compared against stored keywords. Matching is whole-field equality on
// this normalized form, never substring containment.
func NormalizeDetails(details string) string {
	return strings.ToLower(strings.TrimSpace(details))
}
