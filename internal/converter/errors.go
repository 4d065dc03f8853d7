package converter

import "fmt"

// IOError reports an unreadable input or unwritable output.
type IOError struct {
	Op   string
	Path string
	Err  error
}

// Error implements error.
func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying filesystem error.
func (e *IOError) Unwrap() error {
	return e.Err
}
