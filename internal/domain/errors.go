package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation error")
	ErrExternalService = errors.New("external service error")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// FailureKind classifies why a call to the AI provider failed.
type FailureKind string

const (
	FailureNetwork FailureKind = "network"
	FailureTimeout FailureKind = "timeout"
	FailureAuth    FailureKind = "auth"
	FailureUnknown FailureKind = "unknown"
)

func (k FailureKind) String() string { return string(k) }

// ExternalServiceError is returned when the AI provider could not produce a
// rewrite. Fallback always holds an offline rewrite the caller can show instead.
type ExternalServiceError struct {
	Kind     FailureKind
	Message  string
	Details  string
	Fallback string
}

func (e *ExternalServiceError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Kind)
	}
	return fmt.Sprintf("%s (%s): %s", e.Message, e.Kind, e.Details)
}

func (e *ExternalServiceError) Unwrap() error { return ErrExternalService }
