// Package apperr defines the error taxonomy shared by services and
// handlers. Services return these; the HTTP layer maps them to status
// codes (400, 401, 403, 404, everything else 500).
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("ressource introuvable")
	ErrUnauthenticated = errors.New("authentification requise")
	ErrForbidden       = errors.New("accès refusé")
)

// ValidationError marks malformed or missing caller input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundf wraps ErrNotFound with a contextual message.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
