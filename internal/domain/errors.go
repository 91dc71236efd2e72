package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrDependency    = errors.New("dependency failure")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
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

// ConflictError reports a state clash such as a duplicate name or an
// operation that is already applied.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return "conflict: " + e.Message }

func (e *ConflictError) Unwrap() error { return ErrConflict }

// NewConflictError creates a ConflictError with the given message.
func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

// DependencyError reports a failure of a remote collaborator, or a local
// prerequisite that has not been materialized remotely yet.
// Details is safe to return to clients.
type DependencyError struct {
	Op      string
	Details string
	Err     error
}

func (e *DependencyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Details, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Details)
}

func (e *DependencyError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrDependency, e.Err}
	}
	return []error{ErrDependency}
}

// NewDependencyError creates a DependencyError.
func NewDependencyError(op, details string, err error) *DependencyError {
	return &DependencyError{Op: op, Details: details, Err: err}
}

// ForbiddenError is an access denial with a message safe to return to
// clients.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string { return "forbidden: " + e.Message }

func (e *ForbiddenError) Unwrap() error { return ErrForbidden }

// NewForbiddenError creates a ForbiddenError with the given message.
func NewForbiddenError(message string) *ForbiddenError {
	return &ForbiddenError{Message: message}
}
