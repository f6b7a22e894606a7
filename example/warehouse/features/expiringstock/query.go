package expiringstock

import (
	"errors"
	"time"

	"github.com/warespec/specification-go/example/warehouse/core"
)

const (
	queryType = "ExpiringStock"
)

var (
	// ErrZeroReferenceTime is returned when a query is built with the zero time.
	ErrZeroReferenceTime = errors.New("reference time must not be the zero time")

	// ErrNonPositiveWindow is returned when a query is built with a window of zero or less.
	ErrNonPositiveWindow = errors.New("lookahead window must be positive")
)

// Query represents the intent to query the stock items expiring within a window.
type Query struct {
	AsOf   time.Time
	Window time.Duration
}

// BuildQuery creates a new Query for items expiring within the window after asOf.
func BuildQuery(asOf time.Time, window time.Duration) (Query, error) {
	if asOf.IsZero() {
		return Query{}, ErrZeroReferenceTime
	}

	if window <= 0 {
		return Query{}, ErrNonPositiveWindow
	}

	return Query{
		AsOf:   core.ToWarehouseTime(asOf),
		Window: window,
	}, nil
}

// Deadline returns the end of the lookahead window.
func (q Query) Deadline() time.Time {
	return q.AsOf.Add(q.Window)
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
