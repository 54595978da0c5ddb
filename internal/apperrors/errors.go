package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidDuration is returned when a session's computed duration is zero or negative.
var ErrInvalidDuration = errors.New("invalid session duration")

// ErrNotReady is returned when a session is missing the fields required for verification.
var ErrNotReady = errors.New("session is not ready for verification")

// ErrLocked is returned when a change targets a field frozen by verification.
var ErrLocked = errors.New("field is locked by verification")

// ErrAlreadyVerified is returned when verifying a session that is already verified.
var ErrAlreadyVerified = errors.New("session is already verified")

// ErrDiscrepancyUnresolved is returned when an online session is verified before its
// balance discrepancy check has been resolved.
var ErrDiscrepancyUnresolved = errors.New("balance discrepancy is unresolved")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError wrapping ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewValidationError creates an AppError wrapping ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}
