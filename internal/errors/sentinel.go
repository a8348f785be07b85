package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid user input or an invalid option value.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a template, asset, or tool was not found.
	ErrNotFound = errors.New("not found")

	// ErrAborted indicates the interactive session was cancelled by the user.
	ErrAborted = errors.New("aborted")
)
