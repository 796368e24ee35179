package decimal

import "errors"

var (
	// ErrInvalidDecimal is returned for any input that is not a decimal number.
	// Every parse failure matches it with errors.Is.
	ErrInvalidDecimal = errors.New("invalid decimal number")

	// ErrEmptyInput is returned when the input string is empty.
	ErrEmptyInput = errors.New("empty input")

	// ErrMalformedInput is returned when the input does not follow the decimal grammar.
	ErrMalformedInput = errors.New("malformed decimal literal")

	// ErrExponentOutOfRange is returned when the exponent does not fit the supported range.
	ErrExponentOutOfRange = errors.New("exponent out of range")
)
