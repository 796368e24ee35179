package validator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"
)

// DefaultMaxDigitCount is the digit limit applied when none is configured.
const DefaultMaxDigitCount = 11

// maxParams is the number of positional parameters the decimal number rule binds.
const maxParams = 2

// Limits is the resolved configuration of the decimal number rule.
// The zero value is equivalent to WithDefaultDigitLimit.
type Limits struct {
	maxDigitCount        int
	hasDigitLimit        bool
	maxDecimalPlaceCount int
}

// WithDefaultDigitLimit allows DefaultMaxDigitCount digits and any number of places.
func WithDefaultDigitLimit() Limits {
	return Limits{}
}

// WithDigitLimit allows n digits and any number of places.
func WithDigitLimit(n int) Limits {
	return Limits{maxDigitCount: n, hasDigitLimit: true}
}

// WithDigitAndPlaceLimit allows n digits of which at most m are decimal places.
// A place limit of 0 leaves places unconstrained.
func WithDigitAndPlaceLimit(n, m int) Limits {
	l := WithDigitLimit(n)
	l.maxDecimalPlaceCount = m
	return l
}

// LimitsFromParams resolves positionally bound rule parameters:
// the first one is the digit limit, the second one the place limit.
// A nil parameter is treated as absent.
func LimitsFromParams(params ...*int) (Limits, error) {
	if len(params) > maxParams {
		return Limits{}, errors.Join(ErrTooManyParams, fmt.Errorf("got %d parameters", len(params)))
	}

	var l Limits
	if len(params) > 0 && params[0] != nil {
		l.maxDigitCount = *params[0]
		l.hasDigitLimit = true
	}
	if len(params) > 1 && params[1] != nil {
		l.maxDecimalPlaceCount = *params[1]
	}
	return l, nil
}

// MaxDigitCount returns the maximum number of significant digits.
func (l Limits) MaxDigitCount() int {
	if !l.hasDigitLimit {
		return DefaultMaxDigitCount
	}
	return l.maxDigitCount
}

// MaxDecimalPlaceCount returns the place limit and whether it is enforced.
// Zero disables the check.
func (l Limits) MaxDecimalPlaceCount() (int, bool) {
	return l.maxDecimalPlaceCount, l.maxDecimalPlaceCount != 0
}

func (l Limits) String() string {
	if places, ok := l.MaxDecimalPlaceCount(); ok {
		return fmt.Sprintf("maxDigitCount=%d maxDecimalPlaceCount=%d", l.MaxDigitCount(), places)
	}
	return fmt.Sprintf("maxDigitCount=%d maxDecimalPlaceCount=unset", l.MaxDigitCount())
}

// LogValue implements slog.LogValuer.
func (l Limits) LogValue() slog.Value {
	attrs := []slog.Attr{slog.Int("max_digit_count", l.MaxDigitCount())}
	if places, ok := l.MaxDecimalPlaceCount(); ok {
		attrs = append(attrs, slog.Int("max_decimal_place_count", places))
	}
	return slog.GroupValue(attrs...)
}

// limitsDoc is the named form of Limits in YAML and JSON documents.
type limitsDoc struct {
	MaxDigitCount        *int `json:"maxDigitCount,omitempty" yaml:"maxDigitCount,omitempty"`
	MaxDecimalPlaceCount *int `json:"maxDecimalPlaceCount,omitempty" yaml:"maxDecimalPlaceCount,omitempty"`
}

func (d limitsDoc) limits() Limits {
	l, _ := LimitsFromParams(d.MaxDigitCount, d.MaxDecimalPlaceCount)
	return l
}

func (l Limits) doc() limitsDoc {
	digits := l.MaxDigitCount()
	d := limitsDoc{MaxDigitCount: &digits}
	if places, ok := l.MaxDecimalPlaceCount(); ok {
		d.MaxDecimalPlaceCount = &places
	}
	return d
}

// UnmarshalYAML accepts either the positional form ([5, 2]) or the named
// form ({maxDigitCount: 5, maxDecimalPlaceCount: 2}).
func (l *Limits) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var params []*int
		if err := node.Decode(&params); err != nil {
			return errors.Join(ErrInvalidLimits, err)
		}
		parsed, err := LimitsFromParams(params...)
		if err != nil {
			return errors.Join(ErrInvalidLimits, err)
		}
		*l = parsed
		return nil
	case yaml.MappingNode:
		var doc limitsDoc
		if err := node.Decode(&doc); err != nil {
			return errors.Join(ErrInvalidLimits, err)
		}
		*l = doc.limits()
		return nil
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			*l = Limits{}
			return nil
		}
	}
	return errors.Join(ErrInvalidLimits, fmt.Errorf("line %d: expected sequence or mapping", node.Line))
}

// MarshalYAML writes the named form.
func (l Limits) MarshalYAML() (any, error) {
	return l.doc(), nil
}

// UnmarshalJSON accepts the same positional and named forms as UnmarshalYAML.
func (l *Limits) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errors.Join(ErrInvalidLimits, errors.New("empty document"))
	}

	switch data[0] {
	case 'n':
		// null leaves the value untouched, like encoding/json does for other types.
		if string(data) == "null" {
			return nil
		}
	case '[':
		var params []*int
		if err := json.Unmarshal(data, &params); err != nil {
			return errors.Join(ErrInvalidLimits, err)
		}
		parsed, err := LimitsFromParams(params...)
		if err != nil {
			return errors.Join(ErrInvalidLimits, err)
		}
		*l = parsed
		return nil
	case '{':
		var doc limitsDoc
		if err := json.Unmarshal(data, &doc); err != nil {
			return errors.Join(ErrInvalidLimits, err)
		}
		*l = doc.limits()
		return nil
	}
	return errors.Join(ErrInvalidLimits, fmt.Errorf("expected array or object, got %q", data))
}

// MarshalJSON writes the named form.
func (l Limits) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.doc())
}
