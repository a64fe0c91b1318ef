package models

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrAdNotFound         = errors.New("ad not found")
	ErrPhotoNotFound      = errors.New("photo not found")
)

// Validationf wraps ErrValidation with a message describing the offending input.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
