package specification

// The evaluator variants below are the closed set of specification shapes.
// The binary variants evaluate the left operand first and short-circuit when its
// result already determines the outcome. No variant caches an evaluation result,
// every call re-evaluates the operands.

type leaf[T any] struct {
	test func(candidate T) bool
}

func (l leaf[T]) isSatisfiedBy(candidate T) bool {
	return l.test(candidate)
}

type and[T any] struct {
	left  evaluator[T]
	right evaluator[T]
}

func (a and[T]) isSatisfiedBy(candidate T) bool {
	return a.left.isSatisfiedBy(candidate) && a.right.isSatisfiedBy(candidate)
}

type or[T any] struct {
	left  evaluator[T]
	right evaluator[T]
}

func (o or[T]) isSatisfiedBy(candidate T) bool {
	return o.left.isSatisfiedBy(candidate) || o.right.isSatisfiedBy(candidate)
}

type not[T any] struct {
	inner evaluator[T]
}

func (n not[T]) isSatisfiedBy(candidate T) bool {
	return !n.inner.isSatisfiedBy(candidate)
}

type andNot[T any] struct {
	left  evaluator[T]
	right evaluator[T]
}

func (a andNot[T]) isSatisfiedBy(candidate T) bool {
	return a.left.isSatisfiedBy(candidate) && !a.right.isSatisfiedBy(candidate)
}

type orNot[T any] struct {
	left  evaluator[T]
	right evaluator[T]
}

func (o orNot[T]) isSatisfiedBy(candidate T) bool {
	return o.left.isSatisfiedBy(candidate) || !o.right.isSatisfiedBy(candidate)
}
