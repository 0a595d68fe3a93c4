package requirement

// SliceNotEmpty accepts slices with at least one element.
func SliceNotEmpty[S ~[]E, E any]() Requirement[S] {
	return &predicate[S]{
		test:    func(s S) bool { return len(s) > 0 },
		message: "value must not be an empty slice",
	}
}

// MapNotEmpty accepts maps with at least one entry.
func MapNotEmpty[M ~map[K]V, K comparable, V any]() Requirement[M] {
	return &predicate[M]{
		test:    func(m M) bool { return len(m) > 0 },
		message: "value must not be an empty map",
	}
}
