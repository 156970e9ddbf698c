package domain

import (
	"errors"
	"fmt"
)

var ErrValidation = errors.New("validation failed")
var ErrDuplicateAccount = errors.New("account already exists")
var ErrAccountNotFound = errors.New("account not found")

// ValidationErrorf wraps ErrValidation with a reason so callers can match the
// category with errors.Is while the console still gets the detail.
func ValidationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
