package validator

import (
	"log/slog"

	"github.com/dmitrymomot/decimalrule/pkg/logger"
)

// decimalNumberRule is the rule name reported in log records.
const decimalNumberRule = "decimal_number"

// DecimalNumberMatcher validates nullable text as a decimal number within digit limits.
// It is immutable after construction and safe for concurrent use.
type DecimalNumberMatcher struct {
	limits Limits
	field  string
	logger *slog.Logger
}

// MatcherOption configures a DecimalNumberMatcher.
type MatcherOption func(*DecimalNumberMatcher)

// WithField attaches a field name to every recorded violation.
func WithField(name string) MatcherOption {
	return func(m *DecimalNumberMatcher) {
		m.field = name
	}
}

// WithLogger makes the matcher log rejected values at debug level.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) MatcherOption {
	return func(m *DecimalNumberMatcher) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewDecimalNumberMatcher creates a matcher for the given limits.
func NewDecimalNumberMatcher(limits Limits, opts ...MatcherOption) *DecimalNumberMatcher {
	m := &DecimalNumberMatcher{
		limits: limits,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Limits returns the limits the matcher enforces.
func (m *DecimalNumberMatcher) Limits() Limits {
	return m.limits
}

// Match validates value and returns every violation found.
// A nil value is always valid. Unparsable text yields exactly one
// CodeNotValid violation; otherwise the digit and place checks may both fire.
func (m *DecimalNumberMatcher) Match(value *string) ValidationErrors {
	result := Collect(DecimalNumber(m.field, value, m.limits)...)
	if !result.IsEmpty() {
		m.logger.Debug("value rejected",
			logger.Rule(decimalNumberRule),
			logger.Field(m.field),
			logger.Codes(result.Codes()...),
			slog.Any("limits", m.limits),
		)
	}
	return result
}

// MatchString validates a value that is known to be present.
func (m *DecimalNumberMatcher) MatchString(value string) ValidationErrors {
	return m.Match(&value)
}

// MatchDecimalNumber validates value against limits without a long-lived matcher.
func MatchDecimalNumber(value *string, limits Limits) ValidationErrors {
	return NewDecimalNumberMatcher(limits).Match(value)
}
