package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors. Every credential failure wraps ErrUnauthorized so
	// callers can map them to one response while the reason stays loggable.
	ErrUnauthorized       = errors.New("unauthorized")
	ErrAuthHeaderMissing  = fmt.Errorf("%w: auth header missing", ErrUnauthorized)
	ErrInvalidCredentials = fmt.Errorf("%w: authentication failure", ErrUnauthorized)

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Request errors that are reported with a message rather than a rule list
	ErrBadRequest = errors.New("bad request")
)

// User errors
var (
	ErrUserNotFound       = fmt.Errorf("%w: user not found", ErrResourceNotFound)
	ErrEmailAlreadyExists = fmt.Errorf("%w: email already exists", ErrResourceAlreadyExists)
)

// Course errors
var (
	ErrCourseNotFound = fmt.Errorf("%w: course not found", ErrResourceNotFound)
	ErrOwnerNotFound  = errors.New("course owner does not exist")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(err error, message string) error {
	if err == nil {
		err = ErrResourceNotFound
	}
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for a rejected request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// ValidationError carries every violated rule's message, in rule order.
type ValidationError struct {
	Messages []string
}

// NewValidationError builds a ValidationError from one or more messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return ErrValidationFailed.Error()
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(e.Messages, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
