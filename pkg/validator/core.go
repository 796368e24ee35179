package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a single violation with a stable code and translation support.
type ValidationError struct {
	Field             string
	Code              string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// newValidationError builds a violation from a catalog descriptor.
// The descriptor code doubles as the translation key.
func newValidationError(field string, d ErrorDescriptor, values map[string]any) ValidationError {
	if values == nil {
		values = make(map[string]any, 1)
	}
	values["field"] = field
	return ValidationError{
		Field:             field,
		Code:              d.Code(),
		Message:           d.Message(),
		TranslationKey:    d.Code(),
		TranslationValues: values,
	}
}

// ValidationErrors is the ordered outcome of a validation call.
// An empty collection means the value is valid.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		if err.Field == "" {
			parts = append(parts, fmt.Sprintf("%s: %s", err.Code, err.Message))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s (%s)", err.Field, err.Message, err.Code))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// Codes returns violation codes in the order they were recorded.
func (ve ValidationErrors) Codes() []string {
	codes := make([]string, 0, len(ve))
	for _, err := range ve {
		codes = append(codes, err.Code)
	}
	return codes
}

func (ve ValidationErrors) HasCode(code string) bool {
	for _, err := range ve {
		if err.Code == code {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// IsValid reports whether no violation was recorded.
func (ve ValidationErrors) IsValid() bool {
	return ve.IsEmpty()
}

// Err returns the collection as an error, or nil when it is empty.
func (ve ValidationErrors) Err() error {
	if ve.IsEmpty() {
		return nil
	}
	return ve
}

// Is makes errors.Is(err, ErrValidationFailed) true for any non-empty collection.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed && !ve.IsEmpty()
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Collect executes the rules in order and returns every failed rule's error.
func Collect(rules ...Rule) ValidationErrors {
	var errs ValidationErrors
	for _, rule := range rules {
		if !rule.Check() {
			errs.Add(rule.Error)
		}
	}
	return errs
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	return Collect(rules...).Err()
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
