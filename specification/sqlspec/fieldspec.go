package sqlspec

import (
	"errors"
	"reflect"
	"strings"
	"time"
)

var (
	// ErrEmptyFieldName is returned when a field predicate is built with an empty field name.
	ErrEmptyFieldName = errors.New("field name must not be empty")

	// ErrUnknownOperator is returned when a field predicate is built with an operator this package does not define.
	ErrUnknownOperator = errors.New("unknown operator")

	// ErrOperatorNeedsList is returned when OpIn is given a comparison value that is not a slice.
	ErrOperatorNeedsList = errors.New("operator 'in' needs a slice comparison value")

	// ErrOperatorNeedsString is returned when OpContains is given a comparison value that is not a string.
	ErrOperatorNeedsString = errors.New("operator 'contains' needs a string comparison value")
)

// Candidate is the flat field map a node tree evaluates against.
type Candidate = map[string]any

// Operator identifies a comparison between a candidate field and a literal value.
type Operator string

// The operators supported by field predicates.
const (
	OpEqual          Operator = "=="
	OpNotEqual       Operator = "!="
	OpGreaterThan    Operator = ">"
	OpGreaterOrEqual Operator = ">="
	OpLessThan       Operator = "<"
	OpLessOrEqual    Operator = "<="
	OpIn             Operator = "in"
	OpContains       Operator = "contains"
)

// FieldSpec is a field predicate as data: a field name, an operator, and the value
// to compare against. Immutable once constructed; it should only be built through
// Field (which wraps it into a Node) so invalid combinations are rejected up front.
type FieldSpec struct {
	field string
	op    Operator
	value any
}

// Field returns the candidate field name this predicate checks.
func (fs FieldSpec) Field() string {
	return fs.field
}

// Op returns the comparison operator.
func (fs FieldSpec) Op() Operator {
	return fs.op
}

// Value returns the comparison value.
func (fs FieldSpec) Value() any {
	return fs.value
}

func buildFieldSpec(field string, op Operator, value any) (FieldSpec, error) {
	if field == "" {
		return FieldSpec{}, ErrEmptyFieldName
	}

	switch op {
	case OpEqual, OpNotEqual, OpGreaterThan, OpGreaterOrEqual, OpLessThan, OpLessOrEqual:
		// any comparison value is acceptable, incomparable candidates test false
	case OpIn:
		if reflect.ValueOf(value).Kind() != reflect.Slice {
			return FieldSpec{}, ErrOperatorNeedsList
		}
	case OpContains:
		if _, ok := value.(string); !ok {
			return FieldSpec{}, ErrOperatorNeedsString
		}
	default:
		return FieldSpec{}, ErrUnknownOperator
	}

	return FieldSpec{field: field, op: op, value: value}, nil
}

// isSatisfiedBy evaluates the predicate against a candidate.
// It is total: a missing field or an incomparable value pair tests false for every
// operator, including OpNotEqual.
func (fs FieldSpec) isSatisfiedBy(candidate Candidate) bool {
	actual, present := candidate[fs.field]
	if !present || actual == nil {
		return false
	}

	switch fs.op {
	case OpEqual:
		equal, comparable := valuesEqual(actual, fs.value)
		return comparable && equal
	case OpNotEqual:
		equal, comparable := valuesEqual(actual, fs.value)
		return comparable && !equal
	case OpGreaterThan:
		cmp, comparable := compareValues(actual, fs.value)
		return comparable && cmp > 0
	case OpGreaterOrEqual:
		cmp, comparable := compareValues(actual, fs.value)
		return comparable && cmp >= 0
	case OpLessThan:
		cmp, comparable := compareValues(actual, fs.value)
		return comparable && cmp < 0
	case OpLessOrEqual:
		cmp, comparable := compareValues(actual, fs.value)
		return comparable && cmp <= 0
	case OpIn:
		return valueInList(actual, fs.value)
	case OpContains:
		return valueContains(actual, fs.value)
	default:
		return false
	}
}

// valuesEqual reports equality with numeric coercion, and whether the pair was comparable at all.
// Values with an uncomparable type (slices, maps) are never comparable, so evaluation stays total.
func valuesEqual(actual, expected any) (equal bool, comparable bool) {
	if actualNum, actualOK := toFloat(actual); actualOK {
		expectedNum, expectedOK := toFloat(expected)
		if !expectedOK {
			return false, false
		}

		return actualNum == expectedNum, true
	}

	if actualTime, expectedTime, bothTimes := toTimes(actual, expected); bothTimes {
		return actualTime.Equal(expectedTime), true
	}

	actualType := reflect.TypeOf(actual)
	if actualType != reflect.TypeOf(expected) || !actualType.Comparable() {
		return false, false
	}

	return actual == expected, true
}

// compareValues orders two values (-1, 0, 1) when they are both numeric, both strings,
// or both times.
func compareValues(actual, expected any) (cmp int, comparable bool) {
	if actualTime, expectedTime, bothTimes := toTimes(actual, expected); bothTimes {
		return actualTime.Compare(expectedTime), true
	}

	if actualNum, actualOK := toFloat(actual); actualOK {
		expectedNum, expectedOK := toFloat(expected)
		if !expectedOK {
			return 0, false
		}

		switch {
		case actualNum < expectedNum:
			return -1, true
		case actualNum > expectedNum:
			return 1, true
		default:
			return 0, true
		}
	}

	actualStr, actualOK := actual.(string)
	expectedStr, expectedOK := expected.(string)
	if !actualOK || !expectedOK {
		return 0, false
	}

	return strings.Compare(actualStr, expectedStr), true
}

func valueInList(actual, list any) bool {
	listValue := reflect.ValueOf(list)
	if listValue.Kind() != reflect.Slice {
		return false
	}

	for i := 0; i < listValue.Len(); i++ {
		equal, comparable := valuesEqual(actual, listValue.Index(i).Interface())
		if comparable && equal {
			return true
		}
	}

	return false
}

func valueContains(actual, needle any) bool {
	needleStr, ok := needle.(string)
	if !ok {
		return false
	}

	switch actualValue := actual.(type) {
	case string:
		return strings.Contains(actualValue, needleStr)
	default:
		return valueInList(needle, actual)
	}
}

// toTimes reports whether both values are times, handing the pair back for
// Equal/Compare semantics instead of the == identity check (which would also
// compare monotonic clock readings and locations).
func toTimes(actual, expected any) (actualTime, expectedTime time.Time, bothTimes bool) {
	actualTime, actualOK := actual.(time.Time)
	expectedTime, expectedOK := expected.(time.Time)

	return actualTime, expectedTime, actualOK && expectedOK
}

// toFloat coerces the numeric types that arrive from Go values and decoded JSON.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}
