package settings

import "errors"

var (
	// ErrInvalidInput is returned for malformed input data
	ErrInvalidInput = errors.New("settings: invalid input data")

	// ErrInternal is returned for settings store failures
	ErrInternal = errors.New("settings: internal error")
)
