// Package importcmd implements the "import" command, which ingests one
// statement CSV into the ledger snapshot.
package importcmd

import (
	"fmt"
	"os"

	"fjacquet/bank-ledger/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd is the import command
var Cmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import a bank statement CSV into the ledger",
	Long: `Import parses a statement CSV export (columns Date, Details, Amount,
Debit/Credit, Status), categorizes the transactions against the current
keyword rules, merges them into the ledger with deduplication and persists
the updated snapshot. A malformed file rejects the whole batch and leaves
the ledger untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := root.NewSession()
		if err != nil {
			return err
		}

		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("error opening statement file: %w", err)
		}
		defer func() {
			_ = file.Close()
		}()

		imported, err := sess.ImportBatch(file)
		if err != nil {
			return fmt.Errorf("import rejected: %w", err)
		}

		fmt.Printf("Imported %d transactions (ledger now holds %d debit / %d credit rows)\n",
			len(imported), len(sess.DebitView()), len(sess.CreditView()))
		return nil
	},
}
