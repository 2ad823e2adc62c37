package domain

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("project not found")

// ValidationError marks a request rejected for a missing or malformed field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
