package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed matches any non-empty ValidationErrors via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidValue is returned when a field has an invalid value.
	ErrInvalidValue = errors.New("invalid value")

	// ErrTooManyParams is returned when more than two rule parameters are bound.
	ErrTooManyParams = errors.New("decimal number rule accepts at most two parameters")

	// ErrInvalidLimits is returned when a declarative limits definition cannot be decoded.
	ErrInvalidLimits = errors.New("invalid decimal limits definition")

	// ErrLoadingLimits is returned when limits cannot be read from the environment.
	ErrLoadingLimits = errors.New("failed to load decimal limits from environment")
)
