// Package decimal parses textual decimal numbers into exact values and
// reports their digit counts.
//
// The parser accepts the plain decimal grammar used by arbitrary-precision
// decimal libraries, with "." as the only separator:
//
//	[+-]? ( digits ( "." digits? )? | "." digits ) ( [eE] [+-]? digits )?
//
// Locale variants, grouping separators, whitespace, NaN, Infinity and
// non-decimal radix literals are rejected. Parsing never panics: failures are
// returned as errors matching ErrInvalidDecimal.
//
// # Precision and scale
//
// A parsed Value exposes two counts:
//
//   - Precision: significant digits of the unscaled coefficient. Leading
//     zeros are ignored, trailing fractional zeros count as written
//     ("1.50" has precision 3), a positive exponent adds integer trailing
//     zeros ("1.5e3" is 1500, precision 4) and zero has precision 1.
//   - Scale: digits to the right of the separator after applying the
//     exponent, never negative ("1.50" has scale 2, "1.5e-3" has scale 4).
//
// The sign is never counted.
//
// # Usage
//
//	v, err := decimal.Parse("123.45")
//	if err != nil {
//	    // errors.Is(err, decimal.ErrInvalidDecimal) == true
//	}
//	fmt.Println(v.Precision(), v.Scale()) // 5 2
//
// Values are backed by github.com/shopspring/decimal, available through
// Value.Decimal for arithmetic.
package decimal
