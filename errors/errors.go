// Package errors defines the typed application errors surfaced across the
// plugin/host boundary. Lifecycle and argument failures are returned as
// *AppError values so the host can map them to transport status codes
// without string matching.
package errors

import (
	"fmt"
	"net/http"
)

type ErrorType string

const (
	InvalidArgumentError    ErrorType = "INVALID_ARGUMENT"
	LifecycleViolationError ErrorType = "LIFECYCLE_VIOLATION"
	ConflictError           ErrorType = "CONFLICT"
	NotFoundError           ErrorType = "NOT_FOUND"
	ServerError             ErrorType = "SERVER_ERROR"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Raw        error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the wrapped error for errors.Is/As chains.
func (e *AppError) Unwrap() error {
	return e.Raw
}

// GetHTTPStatus returns the HTTP status an error of this type maps to.
func (e *AppError) GetHTTPStatus() int {
	if e.HTTPStatus != 0 {
		return e.HTTPStatus
	}
	return getHTTPStatus(e.Type)
}

// New creates a new AppError
func New(errType ErrorType, message string, detail string) *AppError {
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     detail,
		HTTPStatus: getHTTPStatus(errType),
	}
}

// Wrap wraps a raw error with AppError context
func Wrap(err error, errType ErrorType, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     err.Error(),
		HTTPStatus: getHTTPStatus(errType),
		Raw:        err,
	}
}

// InvalidArgument reports a caller-supplied value outside the accepted domain.
func InvalidArgument(message string, detail string) *AppError {
	return &AppError{
		Type:       InvalidArgumentError,
		Message:    message,
		Detail:     detail,
		HTTPStatus: http.StatusBadRequest,
	}
}

// LifecycleViolation reports a plugin lifecycle method invoked out of order.
func LifecycleViolation(message string, detail string) *AppError {
	return &AppError{
		Type:       LifecycleViolationError,
		Message:    message,
		Detail:     detail,
		HTTPStatus: http.StatusConflict,
	}
}

// AlreadyRegistered reports a duplicate registration under the same key.
func AlreadyRegistered(key string) *AppError {
	return &AppError{
		Type:       ConflictError,
		Message:    "Service already registered",
		Detail:     fmt.Sprintf("Key: %s", key),
		HTTPStatus: http.StatusConflict,
	}
}

func NotFound(entity string, id interface{}) *AppError {
	return &AppError{
		Type:       NotFoundError,
		Message:    fmt.Sprintf("%s not found", entity),
		Detail:     fmt.Sprintf("ID: %v", id),
		HTTPStatus: http.StatusNotFound,
	}
}

func InternalServerError(message string) *AppError {
	return &AppError{
		Type:       ServerError,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

func getHTTPStatus(errType ErrorType) int {
	switch errType {
	case InvalidArgumentError:
		return http.StatusBadRequest
	case LifecycleViolationError:
		return http.StatusConflict
	case ConflictError:
		return http.StatusConflict
	case NotFoundError:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
