// Package parsererror defines the error types surfaced when a statement
// import is rejected.
package parsererror

import "fmt"

// ParseError represents a malformed field encountered while normalizing a
// statement batch. The whole batch is rejected; no partial transaction set
// is ever produced.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s=%q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingColumnError reports a required column that is absent from the
// input header after trimming.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column %q not found in input", e.Column)
}
