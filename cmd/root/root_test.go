package root

import (
	"testing"

	"fjacquet/bank-ledger/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "bank-ledger", Cmd.Use)
	assert.NotEmpty(t, Cmd.Short)
	assert.NotNil(t, Cmd.PersistentPreRunE)
}

func TestNewSession(t *testing.T) {
	var cfg config.Config
	cfg.Data.Directory = t.TempDir()
	cfg.Data.CategoriesFile = "categories.yaml"
	cfg.Data.LedgerFile = "ledger.csv"
	Cfg = &cfg

	sess, err := NewSession()
	require.NoError(t, err)
	assert.Empty(t, sess.DebitView())
	assert.Equal(t, []string{"Uncategorized"}, sess.CategoryNames())
}
