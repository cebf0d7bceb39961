// Package validation models user-correctable input failures.
//
// A validation failure is an ordinary error value, never a panic. Callers
// surface the message to the user and let them retry the action.
package validation

import (
	"errors"
	"fmt"
)

// Error describes a single rejected input.
type Error struct {
	// Field names the offending input (e.g. "name", "patient", "file").
	Field string
	// Message is the user-facing description.
	Message string
}

// New creates a validation error for field.
func New(field, message string) *Error {
	return &Error{Field: field, Message: message}
}

// Newf creates a validation error with a formatted message.
func Newf(field, format string, args ...any) *Error {
	return &Error{Field: field, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Field == "" {
		return e.Message
	}

	return e.Field + ": " + e.Message
}

// As reports whether err is (or wraps) a validation error and returns it.
func As(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}

	return nil, false
}
