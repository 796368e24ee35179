package validator

import (
	"errors"

	"github.com/dmitrymomot/decimalrule/pkg/config"
)

// limitsEnv maps the decimal number rule limits to environment variables.
// A place count of 0 leaves places unconstrained.
type limitsEnv struct {
	MaxDigitCount        int `env:"MAX_DIGIT_COUNT" envDefault:"11"`
	MaxDecimalPlaceCount int `env:"MAX_DECIMAL_PLACE_COUNT" envDefault:"0"`
}

// LimitsFromEnv reads <prefix>MAX_DIGIT_COUNT and <prefix>MAX_DECIMAL_PLACE_COUNT.
//
// Example:
//
//	// DECIMAL_MAX_DIGIT_COUNT=5 DECIMAL_MAX_DECIMAL_PLACE_COUNT=2
//	limits, err := validator.LimitsFromEnv("DECIMAL_")
func LimitsFromEnv(prefix string) (Limits, error) {
	var cfg limitsEnv
	if err := config.Load(&cfg, config.WithPrefix(prefix)); err != nil {
		return Limits{}, errors.Join(ErrLoadingLimits, err)
	}
	return WithDigitAndPlaceLimit(cfg.MaxDigitCount, cfg.MaxDecimalPlaceCount), nil
}
