package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
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

// Named is implemented by write-once containers.
type Named interface {
	Name() string
	IsSet() bool
}

// Field describes a container by name and state without its value, for
// containers whose value must not reach the logs. A nil interface yields an
// empty Attr; a nil *once.Field or *once.SharedField is reported as an
// unnamed, unset container. Log the container itself to include the value.
func Field(key string, c Named) slog.Attr {
	if c == nil {
		return slog.Attr{}
	}
	return Group(key,
		slog.String("name", c.Name()),
		slog.Bool("set", c.IsSet()),
	)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
