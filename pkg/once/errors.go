package once

import (
	"errors"

	"github.com/dmitrymomot/once/pkg/requirement"
)

var (
	// ErrInvalidArgument is returned for an empty name, a nil requirement or
	// callback, or an attempt to store a container inside itself.
	ErrInvalidArgument = requirement.ErrInvalidArgument

	// ErrRequirementViolation is returned when a configured requirement
	// rejects the value. The error carries the requirement's message.
	ErrRequirementViolation = requirement.ErrViolation

	// ErrMissingValue is returned when nil is committed to a container that
	// was not built with requirement.AllowNil.
	ErrMissingValue = errors.New("missing value")

	// ErrAlreadySet is returned when committing to a container that already
	// holds a value.
	ErrAlreadySet = errors.New("already set")

	// ErrNotFound is returned when reading a container that holds no value.
	ErrNotFound = errors.New("not set")
)
