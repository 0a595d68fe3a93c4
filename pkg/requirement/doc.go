// Package requirement provides composable, type-safe predicates that a value
// must satisfy before a write-once container accepts it.
//
// A Requirement is a tiny capability with a single Check method. Check returns
// nil when the candidate is acceptable and a *ViolationError carrying a
// human-readable message otherwise. Requirements are stateless values: the same
// instance can be shared by any number of containers and goroutines.
//
// # Architecture
//
// Each source file groups a family of requirements for a specific domain
// (`string_requirements.go`, `numeric_requirements.go`,
// `collection_requirements.go`, `tag_requirement.go`). Every exported helper
// simply constructs and returns a Requirement; parameterized helpers (InRange,
// Matches, MatchesGlob, SemverConstraint, Tag) validate their parameters up
// front and return ErrInvalidArgument instead of a broken requirement.
//
// Core building blocks:
//   - Requirement[T]   – interface with a single Check(T) error method
//   - FromPredicate    – wraps a boolean test and a rejection message
//   - ViolationError   – rejection carrying the failing requirement's message
//   - AllowNil[T]      – sentinel recognised by the container constructor
//   - Numeric / Float  – generic constraints used by the numeric helpers
//
// # Usage
//
//	port, err := requirement.InRange(1, 65535)
//	if err != nil {
//	    // min > max
//	}
//	name := requirement.NotBlank[string]()
//
//	field, err := once.New[int]("port", port)
//
// # Error Handling
//
// Construction problems are reported with ErrInvalidArgument. Rejections match
// ErrViolation through errors.Is and expose the message via errors.As:
//
//	var verr *requirement.ViolationError
//	if errors.As(err, &verr) {
//	    fmt.Println(verr.Message)
//	}
//
// CheckAll evaluates every requirement and joins all violations, which is
// handy for diagnostics; containers stop at the first failing requirement.
package requirement
