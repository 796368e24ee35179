package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures a single Load call.
type Option func(*options)

type options struct {
	prefix   string
	envFiles []string
}

// WithPrefix prepends prefix to every env tag of the target struct.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithEnvFiles loads the given .env files before parsing.
// Variables already present in the environment are not overridden.
// Empty names are ignored.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		for _, f := range files {
			if f != "" {
				o.envFiles = append(o.envFiles, f)
			}
		}
	}
}

var defaultEnvLoaded sync.Once

// Load parses environment variables into the provided configuration struct
// based on its env and envDefault field tags.
//
// The default .env file is loaded once per process if it exists.
// Missing explicit files passed with WithEnvFiles are reported as errors.
//
// Example:
//
//	type RuleConfig struct {
//		MaxDigitCount int `env:"MAX_DIGIT_COUNT" envDefault:"11"`
//	}
//
//	var cfg RuleConfig
//	err := config.Load(&cfg, config.WithPrefix("DECIMAL_"))
func Load[T any](v *T, opts ...Option) error {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if len(o.envFiles) > 0 {
		if err := godotenv.Load(o.envFiles...); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
