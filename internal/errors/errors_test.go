//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	assert.NotEqual(t, ErrValidation, ErrNotFound)
	assert.NotEqual(t, ErrValidation, ErrAborted)
	assert.NotEqual(t, ErrNotFound, ErrAborted)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "unknown template: fancy",
		Location: "/tmp/project",
		Hint:     "Valid templates: component, starter",
	}

	out := detail.Error()

	assert.Contains(t, out, "validation failed: unknown template: fancy")
	assert.Contains(t, out, "Location: /tmp/project")
	assert.Contains(t, out, "Hint: Valid templates: component, starter")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("bad value", "config.yaml", "fix it")

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "validation failed", detail.Type)
	assert.Equal(t, "bad value", detail.Message)
	assert.Equal(t, "config.yaml", detail.Location)
	assert.Equal(t, "fix it", detail.Hint)
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("npm is not installed", "", "")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"exit error", &ExitError{Code: 42, Err: errors.New("x")}, 42},
		{"wrapped exit error", fmt.Errorf("outer: %w", &ExitError{Code: 7}), 7},
		{"aborted", fmt.Errorf("prompt: %w", ErrAborted), ExitAborted},
		{"validation", NewValidationError("bad", "", ""), ExitValidationError},
		{"not found", Wrap(ErrNotFound, "missing"), ExitNotFound},
		{"other", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitErrorMessage(t *testing.T) {
	assert.Equal(t, "boom", (&ExitError{Code: 1, Err: errors.New("boom")}).Error())
	assert.Equal(t, "exit code 3", (&ExitError{Code: 3}).Error())
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrValidation, "component name check failed")

	assert.True(t, errors.Is(wrapped, ErrValidation))
	assert.Contains(t, wrapped.Error(), "component name check failed")
}
