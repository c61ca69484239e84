package contact

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/contactkit/pkg/validator"
)

var (
	// ErrNilValue is returned when the raw value itself is absent.
	ErrNilValue = errors.New("contact: value is nil")

	// ErrInvalidFormat is matched by every *InvalidFormatError.
	ErrInvalidFormat = errors.New("contact: invalid format")
)

// InvalidFormatError reports a present value that breaks the rules of its field.
type InvalidFormatError struct {
	Field      string
	Value      string
	Violations validator.ValidationErrors
}

// Error reports the field, the rejected value and the first violation.
func (e *InvalidFormatError) Error() string {
	if len(e.Violations) == 0 {
		return fmt.Sprintf("contact: invalid %s %q", e.Field, e.Value)
	}
	return fmt.Sprintf("contact: invalid %s %q: %s", e.Field, e.Value, e.Violations[0].Message)
}

// Is matches ErrInvalidFormat.
func (e *InvalidFormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// Unwrap exposes the violations to validator.ExtractValidationErrors.
func (e *InvalidFormatError) Unwrap() error {
	if len(e.Violations) == 0 {
		return nil
	}
	return e.Violations
}

func invalidFormat(field, value string, err error) error {
	return &InvalidFormatError{
		Field:      field,
		Value:      value,
		Violations: validator.ExtractValidationErrors(err),
	}
}
