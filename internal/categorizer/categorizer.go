// Package categorizer assigns spending categories to transactions by exact
// keyword matching on the Details field.
package categorizer

import (
	"fjacquet/bank-ledger/internal/logging"
	"fjacquet/bank-ledger/internal/models"
)

// Categorizer labels transactions from a category rule set. It holds no
// state of its own; rules are passed in on every application.
type Categorizer struct {
	logger logging.Logger
}

// New creates a Categorizer with the given logger.
func New(logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Categorizer{logger: logger}
}

// Apply labels every transaction in place. Each transaction starts as
// "Uncategorized"; categories are then evaluated in the rule set's listing
// order and a transaction matches when its normalized Details value is an
// exact member of the category's normalized keyword set. A later category
// overwrites the label set by an earlier one, so when two categories share
// a keyword the last one in listing order wins. Matching is whole-field
// equality: the keyword "netflix" does not match "netflix subscription".
func (c *Categorizer) Apply(transactions []models.Transaction, rules []models.CategoryRule) {
	for i := range transactions {
		transactions[i].Category = models.CategoryUncategorized
	}

	for _, rule := range rules {
		if rule.Name == models.CategoryUncategorized || len(rule.Keywords) == 0 {
			continue
		}

		keywords := make(map[string]struct{}, len(rule.Keywords))
		for _, keyword := range rule.Keywords {
			keywords[models.NormalizeDetails(keyword)] = struct{}{}
		}

		for i := range transactions {
			if _, ok := keywords[models.NormalizeDetails(transactions[i].Details)]; ok {
				transactions[i].Category = rule.Name
			}
		}
	}

	c.logger.WithField("count", len(transactions)).Debug("Applied category rules")
}
