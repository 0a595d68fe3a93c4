package once

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/dmitrymomot/once/pkg/requirement"
)

// rules holds what every container fixes at construction: its name, the
// requirements evaluated on commit and whether nil is an acceptable value.
type rules[T any] struct {
	name         string
	requirements []requirement.Requirement[T]
	allowNil     bool
}

func newRules[T any](name string, reqs []requirement.Requirement[T]) (rules[T], error) {
	if name == "" {
		return rules[T]{}, fmt.Errorf("%w: name must not be empty", ErrInvalidArgument)
	}
	r := rules[T]{name: name}
	for i, req := range reqs {
		if req == nil {
			return rules[T]{}, fmt.Errorf("%s: %w: nil requirement at position %d", name, ErrInvalidArgument, i)
		}
		if requirement.IsAllowNil(req) {
			r.allowNil = true
			continue
		}
		r.requirements = append(r.requirements, req)
	}
	return r, nil
}

// check validates value without looking at the container state.
func (r *rules[T]) check(value T, self any) error {
	if r.name == "" {
		return fmt.Errorf("%w: container was not created with a name", ErrInvalidArgument)
	}
	if isNil(value) {
		if !r.allowNil {
			return fmt.Errorf("%s: %w: cannot be set to nil", r.name, ErrMissingValue)
		}
		// Requirements do not apply to the empty sentinel.
		return nil
	}
	if any(value) == self {
		return fmt.Errorf("%s: %w: cannot be set to itself", r.name, ErrInvalidArgument)
	}
	for _, req := range r.requirements {
		if err := req.Check(value); err != nil {
			return fmt.Errorf("%s: %w", r.name, err)
		}
	}
	return nil
}

// adopt names a zero-value container from a decoded payload, or verifies
// that the payload belongs to this container.
func (r *rules[T]) adopt(name string) error {
	if name == "" {
		return fmt.Errorf("%w: encoded container has no name", ErrInvalidArgument)
	}
	if r.name == "" {
		r.name = name
		return nil
	}
	if r.name != name {
		return fmt.Errorf("%s: %w: cannot decode container named %q", r.name, ErrInvalidArgument, name)
	}
	return nil
}

func (r *rules[T]) alreadySet() error {
	return fmt.Errorf("%s: %w", r.name, ErrAlreadySet)
}

func (r *rules[T]) notFound() error {
	return fmt.Errorf("%s: %w", r.name, ErrNotFound)
}

func (r *rules[T]) describe(kind string, set bool, value T) string {
	if !set {
		return fmt.Sprintf("%s %q (not set)", kind, r.name)
	}
	return fmt.Sprintf("%s %q (%v)", kind, r.name, value)
}

func (r *rules[T]) logValue(set bool, value T) slog.Value {
	attrs := []slog.Attr{
		slog.String("name", r.name),
		slog.Bool("set", set),
	}
	if set {
		attrs = append(attrs, slog.Any("value", value))
	}
	return slog.GroupValue(attrs...)
}

// isNil reports whether v is the empty sentinel: a nil value of a nillable
// kind. Values of other kinds are never nil.
func isNil[T any](v T) bool {
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func invalidCallback(name, what string) error {
	return fmt.Errorf("%s: %w: %s must not be nil", name, ErrInvalidArgument, what)
}
