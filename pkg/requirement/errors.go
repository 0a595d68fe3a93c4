package requirement

import "errors"

var (
	// ErrInvalidArgument is returned when a requirement cannot be built from
	// the supplied parameters (nil predicate, empty message, bad pattern, min > max).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrViolation matches every rejection produced by a requirement.
	ErrViolation = errors.New("requirement violated")
)

// ViolationError is returned by Check when a value does not meet a requirement.
type ViolationError struct {
	Message string
}

func (e *ViolationError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrViolation) hold for every ViolationError.
func (e *ViolationError) Is(target error) bool {
	return target == ErrViolation
}

// Violation builds a rejection with the given message.
func Violation(message string) error {
	return &ViolationError{Message: message}
}
