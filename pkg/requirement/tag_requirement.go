package requirement

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// validate is shared by all Tag requirements; *validator.Validate caches
// parsed tags and is safe for concurrent use.
var validate = sync.OnceValue(func() *validator.Validate {
	return validator.New()
})

type tagRequirement[T any] struct {
	tag string
}

func (r *tagRequirement[T]) Check(value T) error {
	err := validate().Var(value, r.tag)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return Violation(fmt.Sprintf("value must satisfy %q (failed on %q)", r.tag, verrs[0].Tag()))
	}
	return Violation(fmt.Sprintf("value must satisfy %q: %v", r.tag, err))
}

// Tag accepts values passing the go-playground validator tag, for example
// "email", "hostname_port" or "min=3,max=32".
func Tag[T any](tag string) (Requirement[T], error) {
	if tag == "" {
		return nil, fmt.Errorf("%w: validation tag must not be empty", ErrInvalidArgument)
	}
	if err := probeTag[T](tag); err != nil {
		return nil, err
	}
	return &tagRequirement[T]{tag: tag}, nil
}

// probeTag runs the tag once against the zero value so that unknown
// validation functions, which the validator reports by panicking, fail at
// construction time instead of on the first commit.
func probeTag[T any](tag string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: invalid validation tag %q: %v", ErrInvalidArgument, tag, r)
		}
	}()
	var zero T
	_ = validate().Var(zero, tag)
	return nil
}
