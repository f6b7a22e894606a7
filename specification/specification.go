package specification

import (
	"errors"
)

var (
	// ErrNilTestFunc is returned when a leaf specification is built from a nil test function.
	ErrNilTestFunc = errors.New("test function must not be nil")

	// ErrUnboundSpecification is returned when a combinator receives a specification
	// that was never built with Satisfying or another combinator (the zero value).
	ErrUnboundSpecification = errors.New("specification is unbound, it must be built with Satisfying or a combinator")
)

// Specification represents a boolean condition over candidates of type T.
//
// It is an immutable value: combinators never mutate the receiver or the operand,
// they build a new Specification referencing both. Specifications are therefore safe
// to reuse and share, including across concurrently evaluating goroutines, since
// IsSatisfiedBy touches no mutable state.
//
// The zero value is "unbound": it satisfies nothing and is rejected by every
// combinator with ErrUnboundSpecification. A usable Specification should only be
// constructed with the supplied factory methods:
//   - Satisfying
//   - And / Or / Not / AndNot / OrNot
type Specification[T any] struct {
	eval evaluator[T]
}

// evaluator is the closed set of specification variants. Each variant defines
// evaluation for one boolean shape; dispatch happens through this interface.
type evaluator[T any] interface {
	isSatisfiedBy(candidate T) bool
}

// Satisfying builds a leaf specification from a test function.
// Returns ErrNilTestFunc if test is nil.
//
// The test function must be total for well-typed candidates: it should treat
// missing/empty input as a normal "does not satisfy" case (return false) instead
// of panicking, so that composite evaluation stays total as well.
func Satisfying[T any](test func(candidate T) bool) (Specification[T], error) {
	if test == nil {
		return Specification[T]{}, ErrNilTestFunc
	}

	return Specification[T]{eval: leaf[T]{test: test}}, nil
}

// IsSatisfiedBy reports whether the candidate satisfies this specification.
//
// It is pure and deterministic, evaluates the operands from scratch on every call,
// and never fails. The unbound zero value satisfies nothing.
func (s Specification[T]) IsSatisfiedBy(candidate T) bool {
	if s.eval == nil {
		return false
	}

	return s.eval.isSatisfiedBy(candidate)
}

// IsBound reports whether this specification was built with Satisfying or a combinator.
func (s Specification[T]) IsBound() bool {
	return s.eval != nil
}

// And builds a specification that is satisfied iff both the receiver and other are
// satisfied by the same candidate. Evaluation short-circuits after the receiver.
// Returns ErrUnboundSpecification if the receiver or other is unbound.
func (s Specification[T]) And(other Specification[T]) (Specification[T], error) {
	if bindErr := bothBound(s, other); bindErr != nil {
		return Specification[T]{}, bindErr
	}

	return Specification[T]{eval: and[T]{left: s.eval, right: other.eval}}, nil
}

// Or builds a specification that is satisfied iff at least one of the receiver and
// other is satisfied. Evaluation short-circuits after the receiver.
// Returns ErrUnboundSpecification if the receiver or other is unbound.
func (s Specification[T]) Or(other Specification[T]) (Specification[T], error) {
	if bindErr := bothBound(s, other); bindErr != nil {
		return Specification[T]{}, bindErr
	}

	return Specification[T]{eval: or[T]{left: s.eval, right: other.eval}}, nil
}

// Not builds a specification that is satisfied iff the receiver is not satisfied.
// Returns ErrUnboundSpecification if the receiver is unbound.
func (s Specification[T]) Not() (Specification[T], error) {
	if s.eval == nil {
		return Specification[T]{}, ErrUnboundSpecification
	}

	return Specification[T]{eval: not[T]{inner: s.eval}}, nil
}

// AndNot builds a specification that is satisfied iff the receiver is satisfied and
// other is not. Behaves like s.And(other.Not()) without the extra wrapper.
// Returns ErrUnboundSpecification if the receiver or other is unbound.
func (s Specification[T]) AndNot(other Specification[T]) (Specification[T], error) {
	if bindErr := bothBound(s, other); bindErr != nil {
		return Specification[T]{}, bindErr
	}

	return Specification[T]{eval: andNot[T]{left: s.eval, right: other.eval}}, nil
}

// OrNot builds a specification that is satisfied iff the receiver is satisfied or
// other is not. Behaves like s.Or(other.Not()) without the extra wrapper.
// Returns ErrUnboundSpecification if the receiver or other is unbound.
func (s Specification[T]) OrNot(other Specification[T]) (Specification[T], error) {
	if bindErr := bothBound(s, other); bindErr != nil {
		return Specification[T]{}, bindErr
	}

	return Specification[T]{eval: orNot[T]{left: s.eval, right: other.eval}}, nil
}

func bothBound[T any](left, right Specification[T]) error {
	if left.eval == nil || right.eval == nil {
		return ErrUnboundSpecification
	}

	return nil
}
