package requirement

import (
	"errors"
	"fmt"
)

// Requirement is a check a candidate value must pass before being accepted.
// Implementations must not retain or mutate the value.
type Requirement[T any] interface {
	Check(value T) error
}

// Numeric is the set of types the numeric requirements operate on.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Float is the set of floating point types.
type Float interface {
	~float32 | ~float64
}

type predicate[T any] struct {
	test    func(T) bool
	message string
}

func (p *predicate[T]) Check(value T) error {
	if !p.test(value) {
		return Violation(p.message)
	}
	return nil
}

// FromPredicate builds a Requirement that accepts a value when test returns
// true and rejects it with message otherwise.
func FromPredicate[T any](test func(T) bool, message string) (Requirement[T], error) {
	if test == nil {
		return nil, fmt.Errorf("%w: predicate must not be nil", ErrInvalidArgument)
	}
	if message == "" {
		return nil, fmt.Errorf("%w: rejection message must not be empty", ErrInvalidArgument)
	}
	return &predicate[T]{test: test, message: message}, nil
}

// MustFromPredicate works like FromPredicate but panics on invalid arguments.
// Meant for package-level requirement definitions.
func MustFromPredicate[T any](test func(T) bool, message string) Requirement[T] {
	r, err := FromPredicate(test, message)
	if err != nil {
		panic(err)
	}
	return r
}

// nilMarker is implemented only by the AllowNil sentinel.
type nilMarker interface {
	allowsNil()
}

type allowNil[T any] struct{}

func (allowNil[T]) allowsNil() {}

// Check accepts everything; the sentinel is never evaluated by containers.
func (allowNil[T]) Check(T) error { return nil }

// AllowNil returns the sentinel requirement that lets a container accept a
// nil value exactly once. Containers recognise it and drop it from the list
// of requirements they evaluate.
func AllowNil[T any]() Requirement[T] {
	return allowNil[T]{}
}

// IsAllowNil reports whether r is the AllowNil sentinel.
func IsAllowNil[T any](r Requirement[T]) bool {
	_, ok := r.(nilMarker)
	return ok
}

// CheckAll runs every requirement against value and joins all violations.
// Nil requirements and the AllowNil sentinel are skipped.
func CheckAll[T any](value T, reqs ...Requirement[T]) error {
	var errs []error
	for _, r := range reqs {
		if r == nil || IsAllowNil(r) {
			continue
		}
		if err := r.Check(value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
