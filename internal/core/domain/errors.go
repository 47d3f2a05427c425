package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks caller input that cannot be accepted. Every
	// *ValidationError matches it with errors.Is.
	ErrValidation = errors.New("validation error")

	// ErrUnauthorized is returned when a request carries no valid
	// credentials.
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError describes a rejected input field.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
