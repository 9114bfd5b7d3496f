// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/hooks/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "hook_not_found_error",
			code:    errors.ErrHookNotFound,
			message: "no matching hooks found for my_hook",
			wantStr: "[HOOK_NOT_FOUND] no matching hooks found for my_hook",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "hook name cannot be empty",
			wantStr: "[INVALID_INPUT] hook name cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details, "details should be initialized")
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrInvalidSignature, "hook %q: %s is variadic", "my_hook", "func(...string)")
	assert.Equal(t, `hook "my_hook": func(...string) is variadic`, err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrInternal, "internal error")

		assert.Equal(t, errors.ErrInternal, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[INTERNAL] internal error: base error", err.Error())
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})
}

func TestWithDetails(t *testing.T) {
	err := errors.New(errors.ErrHookNotFound, "not found").
		WithDetail("name", "my_hook").
		WithDetails(map[string]interface{}{
			"reason":     errors.ReasonShapeMismatch,
			"registered": []string{"(string) -> string"},
		})

	assert.Equal(t, "my_hook", err.Details["name"])
	assert.Equal(t, errors.ReasonShapeMismatch, err.Details["reason"])
	assert.Equal(t, []string{"(string) -> string"}, err.Details["registered"])
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrHookNotFound, "error 1")
	err2 := errors.New(errors.ErrHookNotFound, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	assert.True(t, err1.Is(err2), "same code should match")
	assert.False(t, err1.Is(err3), "different codes should not match")
	assert.True(t, stderrors.Is(err1, err2), "errors.Is should work with HookError")
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrHookNotFound, "not found"), errors.ErrHookNotFound, true},
		{"different_code", errors.New(errors.ErrHookNotFound, "not found"), errors.ErrInternal, false},
		{"wrapped_error", errors.Wrap(stderrors.New("base"), errors.ErrConfigLoad, "denied"), errors.ErrConfigLoad, true},
		{"standard_error", stderrors.New("standard error"), errors.ErrHookNotFound, false},
		{"nil_error", nil, errors.ErrHookNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCodeAndDetails(t *testing.T) {
	err := errors.New(errors.ErrInvalidSignature, "bad").WithDetail("name", "x")

	assert.Equal(t, errors.ErrInvalidSignature, errors.GetErrorCode(err))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))

	assert.Equal(t, "x", errors.GetErrorDetails(err)["name"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	parseErr := errors.Wrap(rootCause, errors.ErrConfigInvalid, "invalid logging level")
	loadErr := errors.Wrap(parseErr, errors.ErrConfigLoad, "failed to load config")

	assert.True(t, errors.IsErrorCode(loadErr, errors.ErrConfigLoad))

	var middle *errors.HookError
	require.True(t, stderrors.As(loadErr.Unwrap(), &middle))
	assert.Equal(t, errors.ErrConfigInvalid, middle.Code)

	assert.True(t, stderrors.Is(loadErr, rootCause))
}
