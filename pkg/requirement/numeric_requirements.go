package requirement

import (
	"fmt"
	"math"
)

// NotZero accepts any value other than the type's zero. For rune and byte
// this rejects the NUL character.
func NotZero[N Numeric]() Requirement[N] {
	return &predicate[N]{
		test:    func(n N) bool { return n != 0 },
		message: "value must not be zero",
	}
}

// NotNegative accepts values greater than or equal to zero.
func NotNegative[N Numeric]() Requirement[N] {
	return &predicate[N]{
		test:    func(n N) bool { return n >= 0 },
		message: "value must not be negative",
	}
}

// Positive accepts values strictly greater than zero.
func Positive[N Numeric]() Requirement[N] {
	return &predicate[N]{
		test:    func(n N) bool { return n > 0 },
		message: "value must be positive",
	}
}

// InRange accepts values between min and max, both inclusive.
func InRange[N Numeric](min, max N) (Requirement[N], error) {
	// Written negated so that NaN bounds are refused too.
	if !(min <= max) {
		return nil, fmt.Errorf("%w: invalid range [%v, %v]", ErrInvalidArgument, min, max)
	}
	return &predicate[N]{
		test:    func(n N) bool { return min <= n && n <= max },
		message: fmt.Sprintf("value must be in range [%v, %v]", min, max),
	}, nil
}

// NotNaN rejects NaN.
func NotNaN[F Float]() Requirement[F] {
	return &predicate[F]{
		test:    func(f F) bool { return !math.IsNaN(float64(f)) },
		message: "value must not be NaN",
	}
}

// Finite rejects NaN and both infinities.
func Finite[F Float]() Requirement[F] {
	return &predicate[F]{
		test: func(f F) bool {
			v := float64(f)
			return !math.IsNaN(v) && !math.IsInf(v, 0)
		},
		message: "value must be finite",
	}
}
