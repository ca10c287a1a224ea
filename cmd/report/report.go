// Package report implements the "report" command, which prints per-category
// spending summaries.
package report

import (
	"fmt"

	"fjacquet/bank-ledger/cmd/root"
	"fjacquet/bank-ledger/internal/models"
	"fjacquet/bank-ledger/internal/report"

	"github.com/spf13/cobra"
)

var (
	direction string
	format    string
)

// Cmd is the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize ledger amounts per category",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := root.NewSession()
		if err != nil {
			return err
		}

		totals, err := sess.CategoryTotals(direction)
		if err != nil {
			return err
		}

		generator := report.NewGenerator(root.Cfg.Report.Currency, root.Log)
		summary := generator.Summarize(direction, totals)

		rendered, err := generator.Render(summary, format)
		if err != nil {
			return err
		}

		fmt.Print(string(rendered))
		return nil
	},
}

func init() {
	Cmd.Flags().StringVarP(&direction, "direction", "d", models.DirectionDebit, "direction to summarize (Debit or Credit)")
	Cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text or json)")
}
