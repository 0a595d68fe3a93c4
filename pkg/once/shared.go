package once

import (
	"log/slog"
	"sync/atomic"

	g "github.com/anacrolix/generics"

	"github.com/dmitrymomot/once/pkg/requirement"
)

// cell is the immutable payload published by a successful commit.
type cell[T any] struct {
	value g.Option[T]
}

func newCell[T any](value T) *cell[T] {
	if isNil(value) {
		return &cell[T]{value: g.None[T]()}
	}
	return &cell[T]{value: g.Some(value)}
}

// SharedField is a write-once container safe for concurrent use. Among any
// number of goroutines racing to commit, exactly one succeeds; the others get
// ErrAlreadySet from Commit or false from TryCommit. Every caller's
// validation runs before the race is decided.
//
// A SharedField must not be copied after first use.
type SharedField[T any] struct {
	rules[T]
	slot atomic.Pointer[cell[T]]
}

// NewShared creates an unset SharedField. Arguments are validated as in New.
func NewShared[T any](name string, reqs ...requirement.Requirement[T]) (*SharedField[T], error) {
	r, err := newRules(name, reqs)
	if err != nil {
		return nil, err
	}
	return &SharedField[T]{rules: r}, nil
}

// MustNewShared works like NewShared but panics on invalid arguments.
func MustNewShared[T any](name string, reqs ...requirement.Requirement[T]) *SharedField[T] {
	f, err := NewShared(name, reqs...)
	if err != nil {
		panic(err)
	}
	return f
}

// Name returns the name given at construction. A nil SharedField has no name.
func (s *SharedField[T]) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// IsSet reports whether a value has been committed. A nil SharedField is unset.
func (s *SharedField[T]) IsSet() bool {
	return s != nil && s.slot.Load() != nil
}

// Commit stores value, or fails if it is invalid or another commit won.
func (s *SharedField[T]) Commit(value T) error {
	ok, err := s.TryCommit(value)
	if err != nil {
		return err
	}
	if !ok {
		return s.alreadySet()
	}
	return nil
}

// TryCommit validates value, then publishes it with a single compare-and-swap.
func (s *SharedField[T]) TryCommit(value T) (bool, error) {
	if err := s.check(value, s); err != nil {
		return false, err
	}
	if s.slot.Load() != nil {
		return false, nil
	}
	return s.slot.CompareAndSwap(nil, newCell(value)), nil
}

// CommitFrom commits the result of supplier, which is not called when the field is set.
func (s *SharedField[T]) CommitFrom(supplier func() T) error {
	if supplier == nil {
		return invalidCallback(s.name, "supplier")
	}
	if s.IsSet() {
		return s.alreadySet()
	}
	return s.Commit(supplier())
}

// TryCommitFrom skips the supplier when the field is already set. Suppliers
// of goroutines that race on an unset field may all run; only one result is
// kept.
func (s *SharedField[T]) TryCommitFrom(supplier func() T) (bool, error) {
	if supplier == nil {
		return false, invalidCallback(s.name, "supplier")
	}
	if s.IsSet() {
		return false, nil
	}
	return s.TryCommit(supplier())
}

// Get returns the committed value, or ErrNotFound.
func (s *SharedField[T]) Get() (T, error) {
	c := s.slot.Load()
	if c == nil {
		var zero T
		return zero, s.notFound()
	}
	return c.value.Value, nil
}

// GetOr returns the committed value, or def when the field is unset.
func (s *SharedField[T]) GetOr(def T) T {
	if c := s.slot.Load(); c != nil {
		return c.value.Value
	}
	return def
}

// Optional returns the committed value, or None when unset or nil.
func (s *SharedField[T]) Optional() g.Option[T] {
	if c := s.slot.Load(); c != nil {
		return c.value
	}
	return g.None[T]()
}

// IfSet calls action with the committed value, if any.
func (s *SharedField[T]) IfSet(action func(T)) error {
	if action == nil {
		return invalidCallback(s.name, "action")
	}
	if c := s.slot.Load(); c != nil {
		action(c.value.Value)
	}
	return nil
}

// String renders the field as `SharedField "name" (value)` or
// `SharedField "name" (not set)`.
func (s *SharedField[T]) String() string {
	c := s.slot.Load()
	if c == nil {
		var zero T
		return s.describe("SharedField", false, zero)
	}
	return s.describe("SharedField", true, c.value.Value)
}

// LogValue implements slog.LogValuer.
func (s *SharedField[T]) LogValue() slog.Value {
	c := s.slot.Load()
	if c == nil {
		var zero T
		return s.logValue(false, zero)
	}
	return s.logValue(true, c.value.Value)
}
