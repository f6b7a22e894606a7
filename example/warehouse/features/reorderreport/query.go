package reorderreport

import (
	"errors"
)

const (
	queryType = "ReorderReport"
)

// ErrNegativeReorderThreshold is returned when a query is built with a negative threshold.
var ErrNegativeReorderThreshold = errors.New("reorder threshold must not be negative")

// Query represents the intent to query the stock items that need reordering.
type Query struct {
	Threshold int
}

// BuildQuery creates a new Query with the provided reorder threshold.
func BuildQuery(threshold int) (Query, error) {
	if threshold < 0 {
		return Query{}, ErrNegativeReorderThreshold
	}

	return Query{
		Threshold: threshold,
	}, nil
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
