// Package once provides write-once value containers: holders that accept a
// value at most one time, become immutable afterwards, and fail predictably
// when read before assignment or written twice.
//
// Two flavours share the same Container contract:
//
//   - Field is unsynchronized. Use it when the writer and every reader are
//     sequenced, for example during single-goroutine initialization.
//   - SharedField is safe for concurrent use. When several goroutines race to
//     commit, exactly one succeeds and every later read observes its value.
//
// # Architecture
//
// A container is created with a name, used only in error messages and
// display, and a fixed list of requirement.Requirement values. Every commit
// attempt runs the same pipeline:
//
//  1. Validate the candidate. A nil candidate (pointer, interface, map,
//     slice, chan or func) is the "empty" sentinel: it is accepted only when
//     the container was built with requirement.AllowNil and it skips the
//     other requirements. A candidate that is the container itself is
//     rejected. Otherwise requirements run in registration order and the
//     first failure is returned.
//  2. Transition from unset to set, or report that the container is already
//     set. Validation always runs first, so a bad argument is reported the
//     same way whatever the state.
//
// The value slot is a generics.Option, so the read path distinguishes never
// set, set to a value and set to the empty sentinel. SharedField publishes an
// immutable cell through a single compare-and-swap, which makes the state
// flip and the value visible to other goroutines in one step.
//
// # Usage
//
//	port := once.MustNew[int]("port", requirement.Positive[int]())
//
//	if err := port.Commit(8080); err != nil {
//	    // invalid value, or someone already initialized it
//	}
//	p, err := port.Get() // 8080
//
//	// Lazy initialization: the supplier is not called once the field is set.
//	ok, err := cache.TryCommitFrom(loadIndex)
//
// # Error Handling
//
// Errors carry the container name and match these sentinels with errors.Is:
//
//   - ErrInvalidArgument      – bad constructor input, nil callback, self reference
//   - ErrRequirementViolation – a requirement rejected the value
//   - ErrMissingValue         – nil committed without requirement.AllowNil
//   - ErrAlreadySet           – Commit or CommitFrom on a set container
//   - ErrNotFound             – Get or Map on an unset container
//
// TryCommit and TryCommitFrom turn only the already-set case into a false
// return; every other error is still returned.
//
// # Serialization
//
// Both containers implement json and yaml (gopkg.in/yaml.v3) marshalers with
// the form {"name": ..., "set": ..., "value": ...}. The value is encoded by
// the element type's own encoding, so a container is exactly as encodable as
// its element. Decoding commits through Commit, which keeps requirements and
// single assignment in force.
package once
