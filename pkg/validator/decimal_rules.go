package validator

import (
	"github.com/dmitrymomot/decimalrule/pkg/decimal"
)

// DecimalDigits validates that v has at most maxDigits significant digits.
func DecimalDigits(field string, v decimal.Value, maxDigits int) Rule {
	return Rule{
		Check: func() bool {
			return v.Precision() <= maxDigits
		},
		Error: newValidationError(field, ExceededMaxDigits, map[string]any{
			"max":    maxDigits,
			"actual": v.Precision(),
		}),
	}
}

// DecimalPlaces validates that v has at most maxPlaces digits after the separator.
func DecimalPlaces(field string, v decimal.Value, maxPlaces int) Rule {
	return Rule{
		Check: func() bool {
			return v.Scale() <= maxPlaces
		},
		Error: newValidationError(field, ExceededMaxPlaces, map[string]any{
			"max":    maxPlaces,
			"actual": v.Scale(),
		}),
	}
}

// notDecimal is the rule recorded for unparsable input. It always fails.
func notDecimal(field string) Rule {
	return Rule{
		Check: func() bool {
			return false
		},
		Error: newValidationError(field, NotValid, nil),
	}
}

// constraintRules builds the digit-count rules for a parsed value.
// The place rule is only included when limits enforce it.
func constraintRules(field string, v decimal.Value, limits Limits) []Rule {
	rules := []Rule{DecimalDigits(field, v, limits.MaxDigitCount())}
	if maxPlaces, ok := limits.MaxDecimalPlaceCount(); ok {
		rules = append(rules, DecimalPlaces(field, v, maxPlaces))
	}
	return rules
}

// Evaluate checks a parsed value against limits.
// Both checks run independently, digits first.
func Evaluate(v decimal.Value, limits Limits) ValidationErrors {
	return Collect(constraintRules("", v, limits)...)
}

// DecimalNumber builds the rules for a nullable textual decimal.
// A nil value produces no rules. Text that is not a decimal number produces a
// single failing rule and suppresses the digit-count rules.
//
//	err := validator.Apply(validator.DecimalNumber("price", req.Price, validator.WithDigitAndPlaceLimit(9, 2))...)
func DecimalNumber(field string, value *string, limits Limits) []Rule {
	if value == nil {
		return nil
	}

	v, err := decimal.Parse(*value)
	if err != nil {
		return []Rule{notDecimal(field)}
	}
	return constraintRules(field, v, limits)
}
