// Package correct implements the "correct" command, which re-labels a
// debit row and feeds the correction back into the keyword rules.
package correct

import (
	"fmt"
	"strconv"

	"fjacquet/bank-ledger/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd is the correct command
var Cmd = &cobra.Command{
	Use:   "correct <row-index> <category>",
	Short: "Correct the category of a debit row",
	Long: `Correct sets a new category on the given debit-view row (as printed by
"bank-ledger list --direction Debit"), registers the row's Details text as
a keyword for that category so future imports auto-classify it, and
re-persists the ledger snapshot.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rowIndex, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid row index %q: %w", args[0], err)
		}

		sess, err := root.NewSession()
		if err != nil {
			return err
		}

		if err := sess.ApplyCorrection(rowIndex, args[1]); err != nil {
			return err
		}

		fmt.Printf("Row %d corrected to %q\n", rowIndex, args[1])
		return nil
	},
}
