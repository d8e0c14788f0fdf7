package errors

import (
	"errors"
	"net/http"
)

// Sentinel errors shared across repositories and use cases.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation failed")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrRateLimited   = errors.New("rate limited")
	ErrUpstream      = errors.New("upstream provider failure")
)

// AppError carries an HTTP status and a client-safe message alongside the
// underlying cause. Handlers funnel every failure through one translator that
// understands this type.
type AppError struct {
	Status  int
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

// New builds an AppError with an explicit status.
func New(status int, message string, cause error) *AppError {
	return &AppError{Status: status, Message: message, Err: cause}
}

func BadRequest(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

func Unauthorized(message string) *AppError {
	return &AppError{Status: http.StatusUnauthorized, Message: message, Err: ErrUnauthorized}
}

func Forbidden(message string) *AppError {
	return &AppError{Status: http.StatusForbidden, Message: message, Err: ErrForbidden}
}

func NotFound(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

func Conflict(message string) *AppError {
	return &AppError{Status: http.StatusConflict, Message: message, Err: ErrAlreadyExists}
}

// Upstream wraps a provider or database failure. The cause is logged
// internally while the client only sees the generic message.
func Upstream(message string, cause error) *AppError {
	return &AppError{Status: http.StatusInternalServerError, Message: message, Err: errors.Join(ErrUpstream, cause)}
}
