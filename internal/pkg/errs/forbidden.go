package errs

import (
	"errors"
	"fmt"
)

var ErrForbidden = errors.New("operation is forbidden")

// ForbiddenError reports that the caller's role does not grant the operation.
type ForbiddenError struct {
	Operation string
	Role      string
}

func NewForbiddenError(operation, role string) *ForbiddenError {
	return &ForbiddenError{Operation: operation, Role: role}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: %s is not allowed for role %s", ErrForbidden, e.Operation, e.Role)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}
