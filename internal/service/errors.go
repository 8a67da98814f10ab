package service

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned when the email/password pair does not match
var ErrInvalidCredentials = errors.New("invalid email or password")

// ValidationError reports a request field that failed validation
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for the given field
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// ConflictError reports a uniqueness violation on a field
type ConflictError struct {
	Field   string
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewConflictError creates a ConflictError for the given field
func NewConflictError(field, message string) error {
	return &ConflictError{Field: field, Message: message}
}

// NotFoundError reports a missing record
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// NewNotFoundError creates a NotFoundError for the given resource
func NewNotFoundError(resource string) error {
	return &NotFoundError{Resource: resource}
}

// ForbiddenError reports an attempt to act on another resident's record
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

// NewForbiddenError creates a ForbiddenError
func NewForbiddenError(message string) error {
	return &ForbiddenError{Message: message}
}
