package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/decimalrule/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("formats field errors with code", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "price",
			Code:    validator.CodeNotValid,
			Message: "The value is not a valid decimal number.",
		})
		assert.Equal(t, "validation failed: price: The value is not a valid decimal number. (doubleNumber.e001)", errs.Error())
	})

	t.Run("formats errors without field by code", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Code: validator.CodeExceededMaxDigits, Message: "too many digits"})
		errs.Add(validator.ValidationError{Code: validator.CodeExceededMaxPlaces, Message: "too many places"})

		msg := errs.Error()
		assert.Contains(t, msg, "validation failed:")
		assert.Contains(t, msg, "doubleNumber.e002: too many digits")
		assert.Contains(t, msg, "doubleNumber.e003: too many places")
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	var errs validator.ValidationErrors
	first := validator.ValidationError{Field: "price", Code: validator.CodeExceededMaxDigits, Message: "digits"}
	second := validator.ValidationError{Field: "price", Code: validator.CodeExceededMaxPlaces, Message: "places"}
	third := validator.ValidationError{Field: "quantity", Code: validator.CodeNotValid, Message: "not valid"}
	errs.Add(first)
	errs.Add(second)
	errs.Add(third)

	t.Run("has", func(t *testing.T) {
		assert.True(t, errs.Has("price"))
		assert.True(t, errs.Has("quantity"))
		assert.False(t, errs.Has("total"))
	})

	t.Run("get", func(t *testing.T) {
		assert.Equal(t, []string{"digits", "places"}, errs.Get("price"))
		assert.Empty(t, errs.Get("total"))
	})

	t.Run("get errors", func(t *testing.T) {
		result := errs.GetErrors("price")
		require.Len(t, result, 2)
		assert.Equal(t, first, result[0])
		assert.Equal(t, second, result[1])
	})

	t.Run("fields are unique and ordered", func(t *testing.T) {
		assert.Equal(t, []string{"price", "quantity"}, errs.Fields())
	})

	t.Run("codes keep recording order", func(t *testing.T) {
		assert.Equal(t, []string{
			validator.CodeExceededMaxDigits,
			validator.CodeExceededMaxPlaces,
			validator.CodeNotValid,
		}, errs.Codes())
	})

	t.Run("has code", func(t *testing.T) {
		assert.True(t, errs.HasCode(validator.CodeNotValid))
		assert.False(t, errs.HasCode("doubleNumber.e999"))
	})
}

func TestValidationErrors_Empty(t *testing.T) {
	t.Run("nil collection", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.True(t, errs.IsEmpty())
		assert.True(t, errs.IsValid())
		assert.NoError(t, errs.Err())
		assert.Empty(t, errs.Codes())
		assert.Empty(t, errs.Fields())
	})

	t.Run("non-empty collection", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "price", Code: validator.CodeNotValid})
		assert.False(t, errs.IsEmpty())
		assert.False(t, errs.IsValid())
		require.Error(t, errs.Err())
	})
}

func TestValidationErrors_Is(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "price", Code: validator.CodeNotValid})

	wrapped := fmt.Errorf("bind request: %w", errs.Err())
	assert.ErrorIs(t, wrapped, validator.ErrValidationFailed)
	assert.NotErrorIs(t, wrapped, validator.ErrInvalidValue)

	var empty validator.ValidationErrors
	assert.False(t, errors.Is(empty, validator.ErrValidationFailed))
}

func TestCollect(t *testing.T) {
	t.Run("keeps failed rules in order", func(t *testing.T) {
		errs := validator.Collect(
			validator.Rule{Check: func() bool { return false }, Error: validator.ValidationError{Code: "a"}},
			validator.Rule{Check: func() bool { return true }, Error: validator.ValidationError{Code: "b"}},
			validator.Rule{Check: func() bool { return false }, Error: validator.ValidationError{Code: "c"}},
		)
		assert.Equal(t, []string{"a", "c"}, errs.Codes())
	})

	t.Run("returns empty result without rules", func(t *testing.T) {
		assert.True(t, validator.Collect().IsEmpty())
	})
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		rules := []validator.Rule{
			{
				Check: func() bool { return true },
				Error: validator.ValidationError{Field: "price", Message: "invalid"},
			},
			{
				Check: func() bool { return true },
				Error: validator.ValidationError{Field: "quantity", Message: "invalid"},
			},
		}

		err := validator.Apply(rules...)
		assert.NoError(t, err)
	})

	t.Run("returns ValidationErrors when rules fail", func(t *testing.T) {
		rules := []validator.Rule{
			{
				Check: func() bool { return false },
				Error: validator.ValidationError{Field: "price", Code: validator.CodeNotValid},
			},
			{
				Check: func() bool { return false },
				Error: validator.ValidationError{Field: "quantity", Code: validator.CodeExceededMaxDigits},
			},
		}

		err := validator.Apply(rules...)
		require.Error(t, err)

		validationErr := validator.ExtractValidationErrors(err)
		require.NotNil(t, validationErr)
		assert.True(t, validationErr.Has("price"))
		assert.True(t, validationErr.Has("quantity"))
	})

	t.Run("handles empty rules", func(t *testing.T) {
		err := validator.Apply()
		assert.NoError(t, err)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("extracts wrapped ValidationErrors", func(t *testing.T) {
		var originalErrs validator.ValidationErrors
		originalErrs.Add(validator.ValidationError{Field: "price", Code: validator.CodeNotValid})

		extractedErrs := validator.ExtractValidationErrors(fmt.Errorf("wrap: %w", originalErrs))
		require.NotNil(t, extractedErrs)
		assert.True(t, extractedErrs.Has("price"))
	})

	t.Run("returns nil for non-ValidationErrors", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("regular error")))
	})

	t.Run("returns nil for nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
	})
}

func TestIsValidationError(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "price", Code: validator.CodeNotValid})

	assert.True(t, validator.IsValidationError(errs))
	assert.False(t, validator.IsValidationError(errors.New("regular error")))
	assert.False(t, validator.IsValidationError(nil))
}
