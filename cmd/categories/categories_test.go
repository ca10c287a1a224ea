package categories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandWiring(t *testing.T) {
	assert.Equal(t, "categories", Cmd.Use)

	names := make(map[string]bool)
	for _, sub := range Cmd.Commands() {
		names[sub.Name()] = true
	}
	require.True(t, names["list"])
	require.True(t, names["add"])
	require.True(t, names["add-keyword"])
}
