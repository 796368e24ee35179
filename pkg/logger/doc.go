// Package logger provides a small factory around Go's slog package with
// functional options for configuration and helper attribute constructors.
//
// New creates a *slog.Logger configured by Option functions that select the
// output format (text or json), the minimum level, the destination writer and
// default attributes applied to every record. Discard returns a logger that
// drops everything; library code starts with it and lets callers inject a
// real logger.
//
// Helper constructors such as Field, ErrorCode and Codes live in attr.go and
// keep attribute naming consistent across packages.
//
// # Usage
//
//	log := logger.New(logger.WithDevelopment("pricing"))
//	matcher := validator.NewDecimalNumberMatcher(
//	    validator.WithDigitAndPlaceLimit(5, 2),
//	    validator.WithLogger(log),
//	)
package logger
