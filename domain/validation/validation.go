// Package validation defines the error type for client-side input
// rejection: input that never reaches the backend.
package validation

import (
	"errors"
	"fmt"
)

// Error is a client-side validation failure. It is always produced before
// any network call is attempted.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

// Errorf builds a validation error with a formatted message.
func Errorf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// Is reports whether err is (or wraps) a validation error.
func Is(err error) bool {
	var v *Error
	return errors.As(err, &v)
}
