// Package validator implements the decimal number validation rule: it checks
// that nullable text is a decimal number whose digit counts stay within
// configured limits, and reports every violation as data instead of failing
// the caller.
//
// The package follows a declarative rule style. Small Rule values pair a
// boolean Check function with translation-friendly error metadata; Collect
// and Apply evaluate them in order and gather failures into a
// ValidationErrors slice, which satisfies the error interface.
//
// # Architecture
//
//   - catalog.go        – ErrorDescriptor values with stable codes
//     (doubleNumber.e001, e002, e003)
//   - limits.go         – Limits configuration with named constructors and
//     YAML/JSON decoding of positional or named parameters
//   - limits_env.go     – Limits from environment variables
//   - decimal_rules.go  – digit and place rules, Evaluate, DecimalNumber
//   - matcher.go        – DecimalNumberMatcher, the single-value entry point
//   - core.go           – Rule, ValidationError, ValidationErrors, Apply
//
// Parsing is delegated to the decimal package. Nothing is mutated after
// construction, so matchers and limits can be shared between goroutines.
//
// # Usage
//
//	matcher := validator.NewDecimalNumberMatcher(
//	    validator.WithDigitAndPlaceLimit(5, 2),
//	    validator.WithField("price"),
//	)
//
//	result := matcher.MatchString("12.345")
//	if !result.IsValid() {
//	    fmt.Println(result.Codes()) // [doubleNumber.e003]
//	}
//
// Rules also compose with other checks through Apply:
//
//	err := validator.Apply(validator.DecimalNumber("price", req.Price, limits)...)
//
// # Configuration
//
// Limits resolve the rule's zero, one or two parameters:
//
//	validator.WithDefaultDigitLimit()        // 11 digits, any places
//	validator.WithDigitLimit(8)              // 8 digits, any places
//	validator.WithDigitAndPlaceLimit(5, 2)   // 5 digits, at most 2 places
//
// A place limit of 0 leaves places unconstrained. Limits can also be
// decoded from YAML or JSON ([5, 2] or {maxDigitCount: 5,
// maxDecimalPlaceCount: 2}) and read from the environment with LimitsFromEnv.
//
// # Error Handling
//
// Violations are never returned as panics or Go errors from Match. Go errors
// are reserved for configuration faults (ErrTooManyParams, ErrInvalidLimits,
// ErrLoadingLimits). ValidationErrors matches ErrValidationFailed with
// errors.Is and can be recovered from a wrapped error with
// ExtractValidationErrors.
package validator
