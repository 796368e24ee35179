package logger

import (
	"log/slog"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Field records the validated field name under the key "field".
// If name is empty, it returns an empty Attr.
func Field(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("field", name)
}

// Rule records the validation rule name under the key "rule".
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// ErrorCode records a single error code under the key "code".
func ErrorCode(code string) slog.Attr {
	return slog.String("code", code)
}

// Codes records violation codes under the key "codes".
// If no codes are given, it returns an empty Attr.
func Codes(codes ...string) slog.Attr {
	if len(codes) == 0 {
		return slog.Attr{}
	}
	return slog.Any("codes", codes)
}
