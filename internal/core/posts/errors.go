package posts

import (
	"errors"
	"fmt"
)

// Sentinel errors for common post operations
var (
	// ErrNotFound is returned when no post matches the author/id pair
	ErrNotFound = errors.New("post not found")

	// ErrNotAuthor is returned when an actor attempts to edit a post they
	// do not own. The web layer resolves this as a redirect to the post's
	// read view rather than an error page.
	ErrNotAuthor = errors.New("actor is not the post author")
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}

// IsNotFound checks if error indicates a missing post
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsForbidden checks if error indicates a non-author mutation attempt
func IsForbidden(err error) bool {
	return errors.Is(err, ErrNotAuthor)
}
