package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors. ErrInvalidCredentials is deliberately the
	// single rejection for both unknown usernames and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed     = errors.New("validation failed")
	ErrWrongCurrentPassword = errors.New("incorrect current password")
	ErrPasswordConfirmation = errors.New("new passwords do not match")

	// Registration errors
	ErrAlreadyRegistered = errors.New("already registered")
	ErrNotEligible       = errors.New("not eligible for this drive")
)

// User errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUsernameExists  = errors.New("username already exists")
	ErrStudentNotFound = errors.New("student not found")
	ErrStudentNoExists = errors.New("student number already exists")
	ErrFacultyNoExists = errors.New("faculty number already exists")
)

// Academics errors
var (
	ErrSubjectNotFound    = errors.New("subject not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
)

// Placement and event errors
var (
	ErrDriveNotFound = errors.New("placement drive not found")
	ErrEventNotFound = errors.New("event not found")
)

// NewNotFoundError creates a wrapped not-found error with a message.
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewForbiddenError creates a wrapped permission-denied error with a message.
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}

// NewValidationError creates a wrapped validation error with a message.
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
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
