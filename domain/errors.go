package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a semantic classification shared across transport layers.
type ErrorCode string

const (
	// ErrCodeValidation marks malformed caller input caught before any storage call.
	ErrCodeValidation ErrorCode = "VALIDATION"
	// ErrCodeModelValidation marks input that is well-formed but invalid against
	// the current stored state (duplicate key, missing referenced row).
	ErrCodeModelValidation ErrorCode = "MODEL_VALIDATION"
	// ErrCodeInvalidCredentials marks a failed login. The message never reveals
	// whether the email or the password was wrong.
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrCodeNotFound           ErrorCode = "NOT_FOUND"
	// ErrCodeUnknownConflict marks a constraint violation whose constraint name
	// is absent from the entity's mapping table.
	ErrCodeUnknownConflict ErrorCode = "UNKNOWN_CONFLICT"
	ErrCodeInternal        ErrorCode = "INTERNAL"
)

// Error represents a domain-level error.
type Error struct {
	Code    ErrorCode
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// NewValidationError builds a validation error naming the offending field.
func NewValidationError(field, message string) *Error {
	return &Error{Code: ErrCodeValidation, Field: field, Message: message}
}

// NewModelValidationError builds a stored-state conflict error.
func NewModelValidationError(message string) *Error {
	return &Error{Code: ErrCodeModelValidation, Message: message}
}

// WrapError wraps an existing error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain errors.
var (
	ErrUserNotFound         = NewError(ErrCodeNotFound, "user not found")
	ErrUserActivityNotFound = NewError(ErrCodeModelValidation, "User activity does not exist")
	ErrInvalidCredentials   = NewError(ErrCodeInvalidCredentials, "Invalid email or password")
	ErrUnauthorized         = NewError(ErrCodeUnauthorized, "Unauthorized")
)

// IsDomainError helps checking error codes.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}
