// Package list implements the "list" command, which prints ledger rows
// with the indices the correct command addresses.
package list

import (
	"fmt"

	"fjacquet/bank-ledger/cmd/root"
	"fjacquet/bank-ledger/internal/models"

	"github.com/spf13/cobra"
)

var direction string

// Cmd is the list command
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List ledger rows with their row indices",
	Long: `List prints the rows of one direction of the ledger, one per line,
prefixed with the row index that "bank-ledger correct" takes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := root.NewSession()
		if err != nil {
			return err
		}

		rows, err := sess.View(direction)
		if err != nil {
			return err
		}

		for i, row := range rows {
			fmt.Printf("%4d  %-12s %-40s %12s  %s\n",
				i, row.Date.Format(models.DateLayout), row.Details, row.Amount.StringFixed(2), row.Category)
		}
		return nil
	},
}

func init() {
	Cmd.Flags().StringVarP(&direction, "direction", "d", models.DirectionDebit, "direction to list (Debit or Credit)")
}
