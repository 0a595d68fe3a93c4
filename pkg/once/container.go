package once

import (
	"fmt"

	g "github.com/anacrolix/generics"
)

// Container is the contract shared by Field and SharedField.
type Container[T any] interface {
	fmt.Stringer

	// Name returns the name given at construction.
	Name() string
	// IsSet reports whether a value has been committed.
	IsSet() bool

	// Commit stores value, or fails if it is invalid or a value is already set.
	Commit(value T) error
	// TryCommit is Commit that reports an already set container as false
	// instead of ErrAlreadySet.
	TryCommit(value T) (bool, error)
	// CommitFrom commits the value returned by supplier. The supplier is not
	// called when the container is already set.
	CommitFrom(supplier func() T) error
	// TryCommitFrom is the TryCommit counterpart of CommitFrom.
	TryCommitFrom(supplier func() T) (bool, error)

	// Get returns the committed value or ErrNotFound.
	Get() (T, error)
	// GetOr returns the committed value, or def when nothing is set.
	GetOr(def T) T
	// Optional returns the committed value as an option. It is None when the
	// container is unset or holds the empty sentinel.
	Optional() g.Option[T]
	// IfSet calls action with the committed value, if any.
	IfSet(action func(T)) error
}

// Compile-time checks.
var (
	_ Container[int] = (*Field[int])(nil)
	_ Container[int] = (*SharedField[int])(nil)
)

// Map applies fn to the value held by c and wraps the result in an option,
// which is None when fn returns nil. A container holding the empty sentinel
// maps to None without calling fn. Map fails with ErrNotFound when c is
// unset; use c.Optional() to treat absence as a value instead.
func Map[T, U any](c Container[T], fn func(T) U) (g.Option[U], error) {
	if c == nil {
		return g.None[U](), fmt.Errorf("%w: container must not be nil", ErrInvalidArgument)
	}
	if fn == nil {
		return g.None[U](), invalidCallback(c.Name(), "transform")
	}
	if !c.IsSet() {
		return g.None[U](), fmt.Errorf("%s: %w", c.Name(), ErrNotFound)
	}
	v := c.Optional()
	if !v.Ok {
		return g.None[U](), nil
	}
	u := fn(v.Value)
	if isNil(u) {
		return g.None[U](), nil
	}
	return g.Some(u), nil
}
