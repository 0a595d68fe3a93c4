package once

import (
	"hash/maphash"
	"reflect"
)

var hashSeed = maphash.MakeSeed()

// Equal reports whether a and b have the same name and are either both unset
// or both set to equal values. Field and SharedField compare with each other.
// Values whose dynamic type is not comparable, such as a slice held by a
// Field[any], are never equal.
func Equal[T comparable](a, b Container[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Name() != b.Name() {
		return false
	}
	av, aerr := a.Get()
	bv, berr := b.Get()
	if aerr != nil || berr != nil {
		return aerr != nil && berr != nil
	}
	if !isComparable(av) || !isComparable(bv) {
		return false
	}
	return av == bv
}

// Hash returns a hash of the container's name and value, consistent with
// Equal within one process. Unset containers hash their name only; values
// that are not comparable contribute only the fact that a value is set.
func Hash[T comparable](c Container[T]) uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	if c == nil {
		return h.Sum64()
	}
	h.WriteString(c.Name())
	if v, err := c.Get(); err == nil {
		h.WriteByte(1)
		if isComparable(v) {
			maphash.WriteComparable(&h, v)
		}
	}
	return h.Sum64()
}

// isComparable reports whether == on v cannot panic. It only matters when T
// is an interface type, whose dynamic value may be a slice, map or func.
func isComparable[T comparable](v T) bool {
	rv := reflect.ValueOf(&v).Elem()
	if rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return true
		}
		rv = rv.Elem()
	}
	return rv.Comparable()
}
