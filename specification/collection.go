package specification

import (
	"errors"
	"iter"
	"slices"
)

var (
	// ErrNoMatch is returned by First and Single when no element satisfies the specification.
	ErrNoMatch = errors.New("no element satisfies the specification")

	// ErrMultipleMatches is returned by Single and SingleOrDefault when more than one element satisfies the specification.
	ErrMultipleMatches = errors.New("more than one element satisfies the specification")
)

// Filter returns a lazy sequence of the elements of seq that satisfy spec.
//
// The sequence is restartable: every iteration walks seq again and re-applies the
// specification to each element. Iteration order is whatever seq provides.
func Filter[T any](seq iter.Seq[T], spec Specification[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for candidate := range seq {
			if !spec.IsSatisfiedBy(candidate) {
				continue
			}

			if !yield(candidate) {
				return
			}
		}
	}
}

// FilterSlice returns a new slice with the elements of candidates that satisfy spec,
// preserving their order. The input slice is never modified.
func FilterSlice[T any](candidates []T, spec Specification[T]) []T {
	return slices.Collect(Filter(slices.Values(candidates), spec))
}

// Count returns how many elements of seq satisfy spec.
func Count[T any](seq iter.Seq[T], spec Specification[T]) int {
	count := 0
	for candidate := range seq {
		if spec.IsSatisfiedBy(candidate) {
			count++
		}
	}

	return count
}

// Any reports whether at least one element of seq satisfies spec.
func Any[T any](seq iter.Seq[T], spec Specification[T]) bool {
	for candidate := range seq {
		if spec.IsSatisfiedBy(candidate) {
			return true
		}
	}

	return false
}

// All reports whether every element of seq satisfies spec.
// An empty sequence satisfies All.
func All[T any](seq iter.Seq[T], spec Specification[T]) bool {
	for candidate := range seq {
		if !spec.IsSatisfiedBy(candidate) {
			return false
		}
	}

	return true
}

// None reports whether no element of seq satisfies spec.
// An empty sequence satisfies None.
func None[T any](seq iter.Seq[T], spec Specification[T]) bool {
	return !Any(seq, spec)
}

// First returns the first element of seq that satisfies spec.
// Returns ErrNoMatch when no element satisfies it.
func First[T any](seq iter.Seq[T], spec Specification[T]) (T, error) {
	for candidate := range seq {
		if spec.IsSatisfiedBy(candidate) {
			return candidate, nil
		}
	}

	var zero T

	return zero, ErrNoMatch
}

// FirstOrDefault returns the first element of seq that satisfies spec,
// or defaultValue when no element satisfies it.
func FirstOrDefault[T any](seq iter.Seq[T], spec Specification[T], defaultValue T) T {
	match, err := First(seq, spec)
	if err != nil {
		return defaultValue
	}

	return match
}

// Single returns the only element of seq that satisfies spec.
// Returns ErrNoMatch when no element satisfies it and ErrMultipleMatches when
// more than one does.
func Single[T any](seq iter.Seq[T], spec Specification[T]) (T, error) {
	var (
		match T
		found bool
		zero  T
	)

	for candidate := range seq {
		if !spec.IsSatisfiedBy(candidate) {
			continue
		}

		if found {
			return zero, ErrMultipleMatches
		}

		match = candidate
		found = true
	}

	if !found {
		return zero, ErrNoMatch
	}

	return match, nil
}

// SingleOrDefault returns the only element of seq that satisfies spec, or
// defaultValue when no element satisfies it. More than one satisfying element is
// still reported with ErrMultipleMatches since it indicates a broken expectation
// rather than an expected empty result.
func SingleOrDefault[T any](seq iter.Seq[T], spec Specification[T], defaultValue T) (T, error) {
	match, err := Single(seq, spec)

	switch {
	case errors.Is(err, ErrNoMatch):
		return defaultValue, nil
	case err != nil:
		return defaultValue, err
	default:
		return match, nil
	}
}
