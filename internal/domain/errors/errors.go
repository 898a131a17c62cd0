package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrAlreadyVerified    = errors.New("email already verified")
	ErrCodeExpired        = errors.New("verification code expired")
	ErrInvalidCode        = errors.New("invalid verification code")
	ErrTooManyRequests    = errors.New("too many requests")
)

// AppError represents an application error with an HTTP status
type AppError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrForbidden)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrAlreadyExists)
}

func Gone(message string) *AppError {
	return NewAppError(http.StatusGone, message, ErrCodeExpired)
}

func TooManyRequests(message string) *AppError {
	return NewAppError(http.StatusTooManyRequests, message, ErrTooManyRequests)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}
