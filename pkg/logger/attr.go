package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errors under "errors", keyed by argument index.
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records the contact field being processed.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Value records a field value. Pass masked values for phones and emails.
func Value(v string) slog.Attr {
	return slog.String("value", v)
}

// Locale records the language used for messages.
func Locale(lang string) slog.Attr {
	return slog.String("locale", lang)
}

// Kind records the failure kind, e.g. "nil" or "invalid_format".
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// Violations records translation keys of failed rules. An empty list yields
// an empty Attr.
func Violations(keys []string) slog.Attr {
	if len(keys) == 0 {
		return slog.Attr{}
	}
	return slog.Any("violations", keys)
}
