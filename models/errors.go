package models

import "fmt"

// The three failure classes of the storefront flows. Every failure is
// terminal for the user action that raised it; nothing is retried.

// ValidationError means required client-side input was missing. No request
// was issued.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// NetworkError means the request never reached the store.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("network error: %v", e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError is a non-2xx response. Message carries the store's structured
// error field when the body had one; otherwise a fallback that embeds the
// raw status and body for diagnosis.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string { return e.Message }
