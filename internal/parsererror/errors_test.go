package parsererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	cause := errors.New("invalid syntax")
	err := &ParseError{Field: "Amount", Value: "abc", Err: cause}

	assert.Contains(t, err.Error(), "Amount")
	assert.Contains(t, err.Error(), `"abc"`)
	assert.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("import rejected: %w", err)
	var parseErr *ParseError
	assert.ErrorAs(t, wrapped, &parseErr)
	assert.Equal(t, "Amount", parseErr.Field)
}

func TestMissingColumnError(t *testing.T) {
	err := &MissingColumnError{Column: "Debit/Credit"}
	assert.Contains(t, err.Error(), "Debit/Credit")

	var missing *MissingColumnError
	assert.ErrorAs(t, fmt.Errorf("import rejected: %w", err), &missing)
}
