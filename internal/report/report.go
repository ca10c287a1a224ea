// Package report renders spending summaries for a direction view.
package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"fjacquet/bank-ledger/internal/ledger"
	"fjacquet/bank-ledger/internal/logging"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryLine is one category row of a summary, with the amount formatted
// to two decimal places.
type CategoryLine struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

// Summary is a spending summary for one direction of the ledger.
type Summary struct {
	ReportID  string         `json:"reportId"`
	Generated time.Time      `json:"generated"`
	Direction string         `json:"direction"`
	Currency  string         `json:"currency"`
	Lines     []CategoryLine `json:"lines"`
	Total     string         `json:"total"`
}

// Generator builds summaries from category totals.
type Generator struct {
	currency string
	logger   logging.Logger
}

// NewGenerator creates a Generator that labels amounts with the given
// currency code.
func NewGenerator(currency string, logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Generator{
		currency: currency,
		logger:   logger,
	}
}

// Summarize builds a Summary from per-category totals. Totals are expected
// in descending order, as produced by ledger.CategoryTotals.
func (g *Generator) Summarize(direction string, totals []ledger.CategoryTotal) *Summary {
	summary := &Summary{
		ReportID:  uuid.New().String(),
		Generated: time.Now(),
		Direction: direction,
		Currency:  g.currency,
		Lines:     make([]CategoryLine, 0, len(totals)),
	}

	total := decimal.Zero
	for _, t := range totals {
		summary.Lines = append(summary.Lines, CategoryLine{
			Category: t.Category,
			Amount:   t.Amount.StringFixed(2),
		})
		total = total.Add(t.Amount)
	}
	summary.Total = total.StringFixed(2)

	g.logger.WithField("direction", direction).Debug("Built spending summary")
	return summary
}

// Render serializes a summary in the requested format ("text" or "json").
func (g *Generator) Render(summary *Summary, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(summary, "", "  ")
	case "text":
		return g.renderText(summary), nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) renderText(summary *Summary) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "%s summary\n", summary.Direction)
	for _, line := range summary.Lines {
		fmt.Fprintf(&b, "%-30s %12s %s\n", line.Category, line.Amount, summary.Currency)
	}
	fmt.Fprintf(&b, "%-30s %12s %s\n", "Total", summary.Total, summary.Currency)
	return []byte(b.String())
}
