package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(InvalidArgumentError, "invalid count", "must be positive")
	assert.Equal(t, InvalidArgumentError, err.Type)
	assert.Equal(t, "invalid count", err.Message)
	assert.Equal(t, "must be positive", err.Detail)
	assert.Equal(t, 400, err.HTTPStatus)
}

func TestWrap(t *testing.T) {
	originalErr := fmt.Errorf("original error")
	wrappedErr := Wrap(originalErr, ServerError, "operation failed")

	assert.Equal(t, ServerError, wrappedErr.Type)
	assert.Equal(t, "operation failed", wrappedErr.Message)
	assert.Equal(t, originalErr.Error(), wrappedErr.Detail)
	assert.Equal(t, 500, wrappedErr.HTTPStatus)
	assert.Equal(t, originalErr, wrappedErr.Raw)
	assert.ErrorIs(t, wrappedErr, originalErr)
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ServerError, "ignored"))
}

func TestInvalidArgument(t *testing.T) {
	err := InvalidArgument("days out of range", "got -3")
	assert.Equal(t, InvalidArgumentError, err.Type)
	assert.Equal(t, "days out of range", err.Message)
	assert.Equal(t, "got -3", err.Detail)
	assert.Equal(t, 400, err.HTTPStatus)
}

func TestLifecycleViolation(t *testing.T) {
	err := LifecycleViolation("plugin not initialized", "RegisterEndpoints before Initialize")
	assert.Equal(t, LifecycleViolationError, err.Type)
	assert.Equal(t, 409, err.HTTPStatus)
}

func TestAlreadyRegistered(t *testing.T) {
	err := AlreadyRegistered("weather.forecast-service")
	assert.Equal(t, ConflictError, err.Type)
	assert.Equal(t, "Service already registered", err.Message)
	assert.Equal(t, "Key: weather.forecast-service", err.Detail)
	assert.Equal(t, 409, err.HTTPStatus)
}

func TestNotFound(t *testing.T) {
	err := NotFound("Service", "weather.unknown")
	assert.Equal(t, NotFoundError, err.Type)
	assert.Equal(t, "Service not found", err.Message)
	assert.Equal(t, 404, err.HTTPStatus)
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name: "with detail",
			err: &AppError{
				Type:    InvalidArgumentError,
				Message: "invalid count",
				Detail:  "must be positive",
			},
			expected: "INVALID_ARGUMENT: invalid count (must be positive)",
		},
		{
			name: "without detail",
			err: &AppError{
				Type:    LifecycleViolationError,
				Message: "plugin disposed",
			},
			expected: "LIFECYCLE_VIOLATION: plugin disposed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestGetHTTPStatusFallback(t *testing.T) {
	err := &AppError{Type: LifecycleViolationError, Message: "late call"}
	assert.Equal(t, 409, err.GetHTTPStatus())

	unknown := &AppError{Type: ErrorType("SOMETHING_ELSE"), Message: "unknown"}
	assert.Equal(t, 500, unknown.GetHTTPStatus())
}
