package errors

import (
	"fmt"
	"time"
)

// ErrorCode identifies an application error category
type ErrorCode string

const (
	ErrCodeInternal   ErrorCode = "INTERNAL_ERROR"
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"
	ErrCodeConflict   ErrorCode = "CONFLICT"
	ErrCodeBadRequest ErrorCode = "BAD_REQUEST"

	ErrCodeQuinielaNotFound ErrorCode = "QUINIELA_NOT_FOUND"
	ErrCodeQuinielaFull     ErrorCode = "QUINIELA_FULL"
	ErrCodeQuinielaClosed   ErrorCode = "QUINIELA_CLOSED"
	ErrCodeAlreadyJoined    ErrorCode = "ALREADY_JOINED"

	ErrCodeEventNotFound ErrorCode = "EVENT_NOT_FOUND"

	ErrCodeDatabaseError ErrorCode = "DATABASE_ERROR"
)

// AppError is the typed application error carried through handlers and
// middleware.
type AppError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	RequestID string                 `json:"request_id,omitempty"`
	Cause     error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// IsNotFound reports whether the error is a not-found error
func (e *AppError) IsNotFound() bool {
	return e.Code == ErrCodeNotFound ||
		e.Code == ErrCodeQuinielaNotFound ||
		e.Code == ErrCodeEventNotFound
}

// IsValidation reports whether the error is a validation error
func (e *AppError) IsValidation() bool {
	return e.Code == ErrCodeValidation || e.Code == ErrCodeBadRequest
}

// WithDetail attaches detail information to the error
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithRequestID attaches the request ID to the error
func (e *AppError) WithRequestID(requestID string) *AppError {
	e.RequestID = requestID
	return e
}

// New creates a new application error
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// Wrap wraps an existing error
func Wrap(err error, code ErrorCode, message string) *AppError {
	appErr := New(code, message)
	appErr.Cause = err
	return appErr
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AppError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// NewValidationError creates a validation error scoped to one field
func NewValidationError(field, reason string) *AppError {
	return New(ErrCodeValidation, fmt.Sprintf("Validation failed for field '%s': %s", field, reason)).
		WithDetail("field", field).
		WithDetail("reason", reason)
}

// NewQuinielaNotFoundError creates a quiniela not-found error
func NewQuinielaNotFoundError(quinielaID string) *AppError {
	return New(ErrCodeQuinielaNotFound, fmt.Sprintf("Quiniela not found: %s", quinielaID)).
		WithDetail("quiniela_id", quinielaID)
}

// NewEventNotFoundError creates an event not-found error
func NewEventNotFoundError(eventID string) *AppError {
	return New(ErrCodeEventNotFound, fmt.Sprintf("Event not found: %s", eventID)).
		WithDetail("event_id", eventID)
}

// NewDatabaseError creates a storage error
func NewDatabaseError(operation string, err error) *AppError {
	return Wrap(err, ErrCodeDatabaseError, fmt.Sprintf("Database operation failed: %s", operation)).
		WithDetail("operation", operation)
}

// AsAppError casts the error to an AppError when possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if err != nil {
		appErr, _ = err.(*AppError)
	}
	return appErr, appErr != nil
}
