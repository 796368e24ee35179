package decimal

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"

	shopspring "github.com/shopspring/decimal"
)

// literalRegex is the accepted decimal grammar. Anything outside of it,
// including whitespace, is rejected before the value is built.
var literalRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// Value is an exact decimal number together with its digit counts.
// Values are immutable; the zero Value is the number 0.
type Value struct {
	dec       shopspring.Decimal
	precision int
	scale     int
}

// Parse converts s into a Value.
// Any failure is reported as an error matching ErrInvalidDecimal.
func Parse(s string) (Value, error) {
	if s == "" {
		return Value{}, errors.Join(ErrInvalidDecimal, ErrEmptyInput)
	}
	if !literalRegex.MatchString(s) {
		return Value{}, errors.Join(ErrInvalidDecimal, ErrMalformedInput, fmt.Errorf("parse %q", s))
	}

	dec, err := shopspring.NewFromString(s)
	if err != nil {
		// The grammar already matched, so the only remaining failure is an exponent
		// that does not fit into int32.
		return Value{}, errors.Join(ErrInvalidDecimal, ErrExponentOutOfRange, err)
	}

	return newValue(dec), nil
}

// MustParse is like Parse but panics on error.
// Use only for fixtures and static values known to be valid.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// IsDecimal reports whether s is a decimal number accepted by Parse.
func IsDecimal(s string) bool {
	_, err := Parse(s)
	return err == nil
}

func newValue(dec shopspring.Decimal) Value {
	exp := int64(dec.Exponent())
	coef := dec.Coefficient()

	v := Value{dec: dec, precision: 1}
	if exp < 0 {
		v.scale = int(-exp)
	}
	if coef.Sign() == 0 {
		return v
	}

	v.precision = countDigits(coef)
	if exp > 0 {
		v.precision += int(exp)
	}
	return v
}

// countDigits returns the number of decimal digits of |n|, n != 0.
func countDigits(n *big.Int) int {
	return len(new(big.Int).Abs(n).String())
}

// Precision returns the number of significant digits.
func (v Value) Precision() int {
	if v.precision == 0 {
		return 1
	}
	return v.precision
}

// Scale returns the number of digits right of the decimal separator.
func (v Value) Scale() int {
	return v.scale
}

// IsNegative reports whether the value is below zero.
func (v Value) IsNegative() bool {
	return v.dec.Sign() < 0
}

// Decimal returns the underlying arbitrary-precision decimal.
func (v Value) Decimal() shopspring.Decimal {
	return v.dec
}

// String returns the value formatted with exactly Scale fractional digits.
func (v Value) String() string {
	return v.dec.StringFixed(int32(v.scale))
}
