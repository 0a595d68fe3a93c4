package once

import (
	"log/slog"

	g "github.com/anacrolix/generics"

	"github.com/dmitrymomot/once/pkg/requirement"
)

// Field is a write-once container for sequenced use. It performs no
// synchronization: concurrent Commit calls, or a Commit concurrent with
// reads, are a data race. Use SharedField for that.
type Field[T any] struct {
	rules[T]
	set   bool
	value g.Option[T]
}

// New creates an unset Field. It fails with ErrInvalidArgument when name is
// empty or any requirement is nil. requirement.AllowNil in reqs lets the
// field accept nil once.
func New[T any](name string, reqs ...requirement.Requirement[T]) (*Field[T], error) {
	r, err := newRules(name, reqs)
	if err != nil {
		return nil, err
	}
	return &Field[T]{rules: r}, nil
}

// MustNew works like New but panics on invalid arguments.
func MustNew[T any](name string, reqs ...requirement.Requirement[T]) *Field[T] {
	f, err := New(name, reqs...)
	if err != nil {
		panic(err)
	}
	return f
}

// Name returns the name given at construction. A nil Field has no name.
func (f *Field[T]) Name() string {
	if f == nil {
		return ""
	}
	return f.name
}

// IsSet reports whether a value has been committed. A nil Field is unset.
func (f *Field[T]) IsSet() bool {
	return f != nil && f.set
}

// Commit stores value, or fails if it is invalid or a value is already set.
func (f *Field[T]) Commit(value T) error {
	if err := f.check(value, f); err != nil {
		return err
	}
	if f.set {
		return f.alreadySet()
	}
	f.store(value)
	return nil
}

// TryCommit works like Commit but reports an already set field as false.
func (f *Field[T]) TryCommit(value T) (bool, error) {
	if err := f.check(value, f); err != nil {
		return false, err
	}
	if f.set {
		return false, nil
	}
	f.store(value)
	return true, nil
}

// CommitFrom commits the result of supplier, which is not called when the field is set.
func (f *Field[T]) CommitFrom(supplier func() T) error {
	if supplier == nil {
		return invalidCallback(f.name, "supplier")
	}
	if f.set {
		return f.alreadySet()
	}
	return f.Commit(supplier())
}

// TryCommitFrom is the TryCommit counterpart of CommitFrom.
func (f *Field[T]) TryCommitFrom(supplier func() T) (bool, error) {
	if supplier == nil {
		return false, invalidCallback(f.name, "supplier")
	}
	if f.set {
		return false, nil
	}
	return f.TryCommit(supplier())
}

func (f *Field[T]) store(value T) {
	if isNil(value) {
		f.value = g.None[T]()
	} else {
		f.value = g.Some(value)
	}
	f.set = true
}

// Get returns the committed value, or ErrNotFound.
func (f *Field[T]) Get() (T, error) {
	if !f.set {
		var zero T
		return zero, f.notFound()
	}
	return f.value.Value, nil
}

// GetOr returns the committed value, or def when the field is unset.
func (f *Field[T]) GetOr(def T) T {
	if !f.set {
		return def
	}
	return f.value.Value
}

// Optional returns the committed value, or None when unset or nil.
func (f *Field[T]) Optional() g.Option[T] {
	if !f.set {
		return g.None[T]()
	}
	return f.value
}

// IfSet calls action with the committed value, if any.
func (f *Field[T]) IfSet(action func(T)) error {
	if action == nil {
		return invalidCallback(f.name, "action")
	}
	if f.set {
		action(f.value.Value)
	}
	return nil
}

// String renders the field as `Field "name" (value)` or `Field "name" (not set)`.
func (f *Field[T]) String() string {
	return f.describe("Field", f.set, f.value.Value)
}

// LogValue implements slog.LogValuer.
func (f *Field[T]) LogValue() slog.Value {
	return f.logValue(f.set, f.value.Value)
}
