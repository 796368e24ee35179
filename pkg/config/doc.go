// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - The default `.env` file in the working directory is loaded once per
//     process when present; extra files can be requested with WithEnvFiles.
//   - Values are parsed into any Go struct using `env` and `envDefault` tags.
//   - WithPrefix namespaces every tag, so one struct can describe several
//     independently configured rule instances.
//   - MustLoad panics on failure for configuration that is required at start-up.
//
// # Usage
//
//	type RuleConfig struct {
//		MaxDigitCount        int `env:"MAX_DIGIT_COUNT" envDefault:"11"`
//		MaxDecimalPlaceCount int `env:"MAX_DECIMAL_PLACE_COUNT"`
//	}
//
//	var price RuleConfig
//	if err := config.Load(&price, config.WithPrefix("PRICE_")); err != nil {
//		// errors.Is(err, config.ErrParsingConfig)
//	}
//
// # Error Handling
//
// Failures are joined with one of the package sentinels (ErrParsingConfig,
// ErrLoadingEnvFile, ErrNilPointer) so callers can branch with errors.Is.
package config
