package sqlspec

import (
	"errors"

	"github.com/warespec/specification-go/specification"
)

// ErrUnboundNode is returned when a combinator receives a node that was never built
// with Field or another combinator (the zero value).
var ErrUnboundNode = errors.New("node is unbound, it must be built with Field or a combinator")

type nodeKind int

const (
	nodeUnbound nodeKind = iota
	nodeField
	nodeAnd
	nodeOr
	nodeNot
	nodeAndNot
	nodeOrNot
)

// Node is an immutable specification expression tree: either a single field
// predicate or a composite of one or two sub-trees. Sub-trees are shared by
// reference and may be reused across multiple composites.
//
// The zero value is unbound: it satisfies nothing and is rejected by every
// combinator.
type Node struct {
	kind  nodeKind
	leaf  FieldSpec
	left  *Node
	right *Node
}

// Field builds a leaf node comparing a candidate field against a value.
// The field name, operator, and value shape are validated up front:
//   - empty field names are rejected with ErrEmptyFieldName
//   - operators outside the defined set are rejected with ErrUnknownOperator
//   - OpIn needs a slice value, OpContains needs a string value
func Field(field string, op Operator, value any) (Node, error) {
	fieldSpec, err := buildFieldSpec(field, op, value)
	if err != nil {
		return Node{}, err
	}

	return Node{kind: nodeField, leaf: fieldSpec}, nil
}

// FieldPredicate returns the field predicate of a leaf node and whether this node is a leaf.
func (n Node) FieldPredicate() (FieldSpec, bool) {
	return n.leaf, n.kind == nodeField
}

// IsBound reports whether this node was built with Field or a combinator.
func (n Node) IsBound() bool {
	return n.kind != nodeUnbound
}

// And builds a node satisfied iff both the receiver and other are satisfied.
func (n Node) And(other Node) (Node, error) {
	return combine(nodeAnd, n, other)
}

// Or builds a node satisfied iff at least one of the receiver and other is satisfied.
func (n Node) Or(other Node) (Node, error) {
	return combine(nodeOr, n, other)
}

// Not builds a node satisfied iff the receiver is not satisfied.
func (n Node) Not() (Node, error) {
	if !n.IsBound() {
		return Node{}, ErrUnboundNode
	}

	inner := n

	return Node{kind: nodeNot, left: &inner}, nil
}

// AndNot builds a node satisfied iff the receiver is satisfied and other is not.
func (n Node) AndNot(other Node) (Node, error) {
	return combine(nodeAndNot, n, other)
}

// OrNot builds a node satisfied iff the receiver is satisfied or other is not.
func (n Node) OrNot(other Node) (Node, error) {
	return combine(nodeOrNot, n, other)
}

func combine(kind nodeKind, left, right Node) (Node, error) {
	if !left.IsBound() || !right.IsBound() {
		return Node{}, ErrUnboundNode
	}

	leftCopy, rightCopy := left, right

	return Node{kind: kind, left: &leftCopy, right: &rightCopy}, nil
}

// IsSatisfiedBy evaluates the node tree against a candidate.
// Evaluation is total and re-walks the tree on every call; binary composites
// short-circuit after the left sub-tree.
func (n Node) IsSatisfiedBy(candidate Candidate) bool {
	switch n.kind {
	case nodeField:
		return n.leaf.isSatisfiedBy(candidate)
	case nodeAnd:
		return n.left.IsSatisfiedBy(candidate) && n.right.IsSatisfiedBy(candidate)
	case nodeOr:
		return n.left.IsSatisfiedBy(candidate) || n.right.IsSatisfiedBy(candidate)
	case nodeNot:
		return !n.left.IsSatisfiedBy(candidate)
	case nodeAndNot:
		return n.left.IsSatisfiedBy(candidate) && !n.right.IsSatisfiedBy(candidate)
	case nodeOrNot:
		return n.left.IsSatisfiedBy(candidate) || !n.right.IsSatisfiedBy(candidate)
	default:
		return false
	}
}

// Spec bridges the node into a specification.Specification so it composes with any
// other specification over Candidate values.
func (n Node) Spec() (specification.Specification[Candidate], error) {
	if !n.IsBound() {
		return specification.Specification[Candidate]{}, ErrUnboundNode
	}

	return specification.Satisfying(n.IsSatisfiedBy)
}
