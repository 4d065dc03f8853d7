package nemea

import "fmt"

// FormatError reports a coordinate or timestamp whose text does not have the
// shape an encoder expects.
type FormatError struct {
	Field  string
	Value  string
	Reason error
}

// Error implements error.
func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Reason)
}

// Unwrap returns the underlying reason.
func (e *FormatError) Unwrap() error {
	return e.Reason
}
