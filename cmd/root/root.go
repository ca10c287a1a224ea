// Package root contains the root command for the application.
package root

import (
	"fjacquet/bank-ledger/internal/config"
	"fjacquet/bank-ledger/internal/ledger"
	"fjacquet/bank-ledger/internal/logging"
	"fjacquet/bank-ledger/internal/session"
	"fjacquet/bank-ledger/internal/store"

	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logging.GetLogger()

	// Cfg is the resolved application configuration, available after the
	// root command's PersistentPreRun has executed.
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "bank-ledger",
		Short: "Import bank statement CSVs, categorize spending and learn from corrections.",
		Long: `bank-ledger ingests bank-transaction CSV exports into a deduplicated
ledger, assigns each transaction a spending category by exact keyword
matching on the Details field, and learns new keywords from user
corrections.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()

			cfg, err := config.Initialize()
			if err != nil {
				return err
			}
			Cfg = cfg

			Log = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
			logging.SetLogger(Log)
			return nil
		},
	}
)

// NewSession builds a Session from the resolved configuration. Commands
// call this after PersistentPreRun has populated Cfg.
func NewSession() (*session.Session, error) {
	categoryStore := store.NewCategoryStore(Cfg.CategoriesPath(), Log)
	snapshot := ledger.NewSnapshot(Cfg.LedgerPath(), Log)
	return session.New(categoryStore, snapshot, Log)
}
