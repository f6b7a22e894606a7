// Package specification provides composable boolean predicates over typed candidates.
//
// A Specification wraps a boolean condition on a candidate of type T and can be
// combined with other specifications into new ones:
//   - And / Or / Not
//   - AndNot (satisfied iff the receiver is and the operand is not)
//   - OrNot (satisfied iff the receiver is or the operand is not)
//
// Specifications are immutable values. Combinators are pure factory operations:
// they validate their operands at construction time and defer all evaluation to
// IsSatisfiedBy, which re-evaluates the operand tree on every call. Evaluation is
// total: it never fails for well-typed candidates, and composites propagate
// nothing because leaves are required to treat missing/empty input as "does not
// satisfy".
//
// The package also provides an adapter over candidate collections (Filter, Count,
// Any, All, None, First, Single and their or-default variants), and dependency-free
// observability interfaces with an opt-in Instrument wrapper.
//
// Common usage pattern:
//
//	lowStock, _ := specification.Satisfying(func(item StockItem) bool {
//		return item.Quantity > 0 && item.Quantity <= 10
//	})
//	inCategory, _ := specification.Satisfying(func(item StockItem) bool {
//		return item.Category == "perishable"
//	})
//
//	needsReorder, err := lowStock.And(inCategory)
//	if err != nil {
//		// handle construction error
//	}
//
//	matching := specification.FilterSlice(inventory, needsReorder)
package specification
