package sqlspec

import (
	"errors"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect import
	"github.com/doug-martin/goqu/v9/exp"
)

const dialectPostgres = "postgres"

var (
	// ErrEmptyTableName is returned when ToSQL is called with an empty table name.
	ErrEmptyTableName = errors.New("empty table name supplied")

	// ErrBuildingQueryFailed is returned when the rendered statement cannot be converted to SQL.
	ErrBuildingQueryFailed = errors.New("building query failed")
)

// ToSQL renders the node tree into a SELECT statement over the given table with the
// tree as its WHERE clause. It only produces SQL text; executing it is up to the
// caller and outside the scope of this package.
func (n Node) ToSQL(table string) (string, error) {
	if table == "" {
		return "", ErrEmptyTableName
	}

	whereExpr, exprErr := n.WhereExpression()
	if exprErr != nil {
		return "", exprErr
	}

	selectStmt := goqu.Dialect(dialectPostgres).
		From(table).
		Select(goqu.Star()).
		Where(whereExpr)

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

// WhereExpression renders the node tree into a goqu expression, for callers that
// want to embed the condition into a larger statement of their own.
func (n Node) WhereExpression() (goqu.Expression, error) {
	switch n.kind {
	case nodeField:
		return n.leaf.expression(), nil
	case nodeAnd, nodeOr, nodeAndNot, nodeOrNot:
		return n.binaryExpression()
	case nodeNot:
		inner, innerErr := n.left.WhereExpression()
		if innerErr != nil {
			return nil, innerErr
		}

		return negate(inner), nil
	default:
		return nil, ErrUnboundNode
	}
}

func (n Node) binaryExpression() (goqu.Expression, error) {
	left, leftErr := n.left.WhereExpression()
	if leftErr != nil {
		return nil, leftErr
	}

	right, rightErr := n.right.WhereExpression()
	if rightErr != nil {
		return nil, rightErr
	}

	switch n.kind {
	case nodeAnd:
		return goqu.And(left, right), nil
	case nodeOr:
		return goqu.Or(left, right), nil
	case nodeAndNot:
		return goqu.And(left, negate(right)), nil
	case nodeOrNot:
		return goqu.Or(left, negate(right)), nil
	default:
		return nil, ErrUnboundNode
	}
}

func negate(expr goqu.Expression) goqu.Expression {
	return goqu.L("NOT ?", expr)
}

// expression maps a field predicate to the matching goqu comparison.
// The value shapes were validated at construction, so no error can arise here.
func (fs FieldSpec) expression() exp.Expression {
	column := goqu.C(fs.field)

	switch fs.op {
	case OpEqual:
		return column.Eq(fs.value)
	case OpNotEqual:
		return column.Neq(fs.value)
	case OpGreaterThan:
		return column.Gt(fs.value)
	case OpGreaterOrEqual:
		return column.Gte(fs.value)
	case OpLessThan:
		return column.Lt(fs.value)
	case OpLessOrEqual:
		return column.Lte(fs.value)
	case OpIn:
		return column.In(fs.value)
	case OpContains:
		pattern, _ := fs.value.(string)
		return column.Like("%" + pattern + "%")
	default:
		return column.Eq(fs.value)
	}
}
