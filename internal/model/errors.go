package model

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("article not found")
	ErrTimeout  = errors.New("upstream call timed out")
)

// ValidationError reports a malformed filter or request body. It surfaces to
// the caller as a bad request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ProviderError carries the upstream status and message from a failed news
// provider call.
type ProviderError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("news provider error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("news provider error %d: %s", e.StatusCode, e.Message)
}
