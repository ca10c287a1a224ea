package report

import (
	"testing"

	"fjacquet/bank-ledger/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandFlags(t *testing.T) {
	assert.Equal(t, "report", Cmd.Name())

	directionFlag := Cmd.Flags().Lookup("direction")
	require.NotNil(t, directionFlag)
	assert.Equal(t, models.DirectionDebit, directionFlag.DefValue)

	formatFlag := Cmd.Flags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}
