// Package session wires the core components into the collaborator-facing
// API consumed by the presentation layer. A Session is the explicit
// application state: it owns the category store, the ledger history and the
// derived direction views, and there are no ambient globals behind it.
package session

import (
	"fmt"
	"io"
	"strings"

	"fjacquet/bank-ledger/internal/categorizer"
	"fjacquet/bank-ledger/internal/ledger"
	"fjacquet/bank-ledger/internal/logging"
	"fjacquet/bank-ledger/internal/models"
	"fjacquet/bank-ledger/internal/normalizer"
	"fjacquet/bank-ledger/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Session holds the application state for one user session. Operations are
// synchronous and run one at a time; the session assumes it is the only
// process touching the persisted store and snapshot.
type Session struct {
	store       *store.CategoryStore
	snapshot    *ledger.Snapshot
	categorizer *categorizer.Categorizer
	logger      logging.Logger

	transactions []models.Transaction
	debits       []models.Transaction
	credits      []models.Transaction
}

// New loads the category rules and the ledger snapshot and builds the
// direction views.
func New(categoryStore *store.CategoryStore, snapshot *ledger.Snapshot, logger logging.Logger) (*Session, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	if err := categoryStore.Load(); err != nil {
		return nil, fmt.Errorf("error loading category rules: %w", err)
	}

	transactions, err := snapshot.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading ledger snapshot: %w", err)
	}

	s := &Session{
		store:        categoryStore,
		snapshot:     snapshot,
		categorizer:  categorizer.New(logger),
		logger:       logger,
		transactions: transactions,
	}
	s.refreshViews()
	return s, nil
}

// ImportBatch normalizes a raw statement CSV, categorizes it against the
// current rules, merges it into the ledger history with deduplication and
// persists the merged snapshot. On any parse failure the whole batch is
// rejected and prior state is left intact. The returned slice holds the
// categorized incoming records.
func (s *Session) ImportBatch(r io.Reader) ([]models.Transaction, error) {
	batchLog := s.logger.WithField("batch_id", uuid.New().String())

	incoming, err := normalizer.Parse(r, batchLog)
	if err != nil {
		return nil, err
	}

	s.categorizer.Apply(incoming, s.store.Rules())

	merged := ledger.Merge(s.transactions, incoming)
	if err := s.snapshot.Save(merged); err != nil {
		return nil, fmt.Errorf("error persisting ledger: %w", err)
	}

	s.transactions = merged
	s.refreshViews()

	batchLog.Info("Imported statement batch",
		logging.Field{Key: "incoming", Value: len(incoming)},
		logging.Field{Key: "ledger", Value: len(merged)})
	return incoming, nil
}

// AddCategory creates a new empty category. It returns false when the name
// is empty or already taken.
func (s *Session) AddCategory(name string) bool {
	return s.store.AddCategory(name)
}

// AddKeyword registers a keyword under an existing category. It returns
// false when the trimmed keyword is empty, already present, or the
// category is unknown.
func (s *Session) AddKeyword(category, keyword string) bool {
	return s.store.AddKeyword(category, keyword)
}

// CategoryNames returns the category names in the store's listing order.
func (s *Session) CategoryNames() []string {
	return s.store.CategoryNames()
}

// DebitView returns the debit subset of the ledger.
func (s *Session) DebitView() []models.Transaction {
	return s.debits
}

// CreditView returns the credit subset of the ledger.
func (s *Session) CreditView() []models.Transaction {
	return s.credits
}

// ApplyCorrection sets a new category on a debit-view row and feeds the
// correction back into the category store: the row's as-stored Details text
// is registered as a keyword for the chosen category, so future imports of
// the same Details auto-classify. The category must already exist in the
// store; corrections never create categories. When the new category equals
// the current one nothing happens.
//
// The corrected label is also written back to the full ledger and the
// snapshot is re-persisted, so corrections survive a reload directly rather
// than only through re-categorization.
func (s *Session) ApplyCorrection(rowIndex int, newCategory string) error {
	if rowIndex < 0 || rowIndex >= len(s.debits) {
		return fmt.Errorf("debit row index %d out of range", rowIndex)
	}
	if !s.store.HasCategory(newCategory) {
		return fmt.Errorf("unknown category %q", newCategory)
	}

	row := &s.debits[rowIndex]
	if row.Category == newCategory {
		return nil
	}

	key := row.Key()
	row.Category = newCategory
	for i := range s.transactions {
		if s.transactions[i].Key() == key {
			s.transactions[i].Category = newCategory
		}
	}

	if !s.store.AddKeyword(newCategory, row.Details) {
		s.logger.WithField("category", newCategory).
			WithField("keyword", row.Details).
			Debug("Keyword already registered for category")
	}

	if err := s.snapshot.Save(s.transactions); err != nil {
		return fmt.Errorf("error persisting corrected ledger: %w", err)
	}

	s.logger.Info("Applied category correction",
		logging.Field{Key: "details", Value: row.Details},
		logging.Field{Key: "category", Value: newCategory})
	return nil
}

// View returns the ledger rows for the given direction. For the debit view
// the row indices are the indices ApplyCorrection addresses.
func (s *Session) View(direction string) ([]models.Transaction, error) {
	return s.viewFor(direction)
}

// CategoryTotals returns the per-category sums for the given direction,
// sorted descending by amount.
func (s *Session) CategoryTotals(direction string) ([]ledger.CategoryTotal, error) {
	view, err := s.viewFor(direction)
	if err != nil {
		return nil, err
	}
	return ledger.CategoryTotals(view), nil
}

// DirectionTotal returns the summed amount for the given direction.
func (s *Session) DirectionTotal(direction string) (decimal.Decimal, error) {
	view, err := s.viewFor(direction)
	if err != nil {
		return decimal.Zero, err
	}
	return ledger.SumAmounts(view), nil
}

func (s *Session) viewFor(direction string) ([]models.Transaction, error) {
	switch {
	case strings.EqualFold(direction, models.DirectionDebit):
		return s.debits, nil
	case strings.EqualFold(direction, models.DirectionCredit):
		return s.credits, nil
	default:
		return nil, fmt.Errorf("unknown direction %q", direction)
	}
}

func (s *Session) refreshViews() {
	s.debits, s.credits = ledger.SplitByDirection(s.transactions)
}
