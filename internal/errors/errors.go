package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrCorpusUnavailable is returned when the corpus data directory
	// is missing or unreadable
	ErrCorpusUnavailable = errors.New("corpus unavailable")
)

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// CorpusError represents a corpus load failure with context
type CorpusError struct {
	Dir string
	Err error
}

func (e *CorpusError) Error() string {
	return fmt.Sprintf("corpus directory '%s' unavailable: %v", e.Dir, e.Err)
}

func (e *CorpusError) Is(target error) bool {
	return target == ErrCorpusUnavailable
}

func (e *CorpusError) Unwrap() error {
	return e.Err
}

// NewCorpusError creates a new CorpusError
func NewCorpusError(dir string, err error) *CorpusError {
	return &CorpusError{Dir: dir, Err: err}
}
