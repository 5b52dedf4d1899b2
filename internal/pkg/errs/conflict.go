package errs

import (
	"errors"
	"fmt"
)

var ErrConflict = errors.New("state conflict")

// ConflictError reports an operation that is well-formed but not allowed in the
// current state of the target, such as an invalid status transition.
// Cause carries the human-readable explanation returned to clients.
type ConflictError struct {
	ParamName string
	Cause     error
}

func NewConflictError(paramName string, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrConflict, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrConflict, e.ParamName)
}

// Unwrap exposes both the sentinel and the cause so callers can match either.
func (e *ConflictError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrConflict}
	}
	return []error{ErrConflict, e.Cause}
}
