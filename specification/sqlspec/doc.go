// Package sqlspec provides a data-backed specification representation that can be
// evaluated in memory and rendered to a SQL WHERE clause.
//
// A Node is either a field predicate (field, operator, comparison value) or a
// composite built with the same five combinators as the specification package.
// Nodes evaluate candidates of type Candidate (a flat field map) through the usual
// IsSatisfiedBy contract, and Spec bridges a Node into a
// specification.Specification[Candidate] so it composes with any other
// specification over the same candidate type.
//
// ToSQL renders a node tree into a SELECT statement for a given table using goqu.
// The package only produces SQL text, it never connects to or executes against a
// database.
//
// Common usage pattern:
//
//	perishable, _ := sqlspec.Field("category", sqlspec.OpEqual, "perishable")
//	lowStock, _ := sqlspec.Field("quantity", sqlspec.OpLessOrEqual, 10)
//
//	needsAttention, err := perishable.And(lowStock)
//	if err != nil {
//		// handle construction error
//	}
//
//	query, err := needsAttention.ToSQL("stock_items")
//	// SELECT * FROM "stock_items" WHERE (("category" = 'perishable') AND ("quantity" <= 10))
package sqlspec
