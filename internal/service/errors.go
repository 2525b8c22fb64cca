package service

import (
	"errors"
	"fmt"

	"bookmarkhub/internal/model"
)

var (
	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when a requested resource is not found.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned when a password or token does not match.
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError represents a validation error with a field name.
// It is the model's error so that decoding failures surface unchanged.
type ValidationError = model.ValidationError

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
