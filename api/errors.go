// File: api/errors.go
//
// Common error types for the autoreset event library.

package api

import "fmt"

// Common errors reported by event constructors.
var (
	ErrResourceExhausted = fmt.Errorf("resource exhausted")
	ErrNotSupported      = fmt.Errorf("operation not supported")
	ErrTimedOut          = fmt.Errorf("operation timed out")
)

// OSError wraps a failed OS call at construction time. Post-construction
// failures are not represented here: once the kernel object is valid, an
// unexpected syscall failure panics (see the event package).
type OSError struct {
	Op  string // failing call, e.g. "eventfd", "kqueue", "CreateEvent"
	Err error  // original OS error (errno on unix)
}

// Error implements the error interface.
func (e *OSError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap exposes the original OS error for errors.Is/As.
func (e *OSError) Unwrap() error {
	return e.Err
}

// NewOSError creates a structured construction-time error.
func NewOSError(op string, err error) *OSError {
	return &OSError{Op: op, Err: err}
}
