// Package validation defines the error kind for malformed input. Callers
// distinguish it from conflicts and availability failures because the
// remedial action differs: fix the input rather than re-pick a slot.
package validation

import (
	"errors"
	"fmt"
)

// Error describes a rejected input value.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errorf builds a validation error for a field.
func Errorf(field, format string, args ...interface{}) *Error {
	return &Error{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsError reports whether err is (or wraps) a validation error.
func IsError(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}
