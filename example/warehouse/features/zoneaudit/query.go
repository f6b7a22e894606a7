package zoneaudit

import (
	"errors"
	"time"

	"github.com/warespec/specification-go/example/warehouse/core"
)

const (
	queryType = "ZoneAudit"
)

var (
	// ErrEmptyAuditZone is returned when a query is built with an empty zone.
	ErrEmptyAuditZone = errors.New("audit zone must not be empty")

	// ErrZeroAuditTime is returned when a query is built with the zero time.
	ErrZeroAuditTime = errors.New("audit time must not be the zero time")
)

// Query represents the intent to audit one warehouse zone.
//
// PerishableCategories lists the product categories that must carry a
// best-before boundary; an item in one of them without an expiry is a breach.
type Query struct {
	Zone                 core.ZoneString
	AsOf                 time.Time
	PerishableCategories []core.CategoryString
}

// BuildQuery creates a new Query for the provided zone and audit time.
func BuildQuery(zone core.ZoneString, asOf time.Time, perishableCategories ...core.CategoryString) (Query, error) {
	if zone == "" {
		return Query{}, ErrEmptyAuditZone
	}

	if asOf.IsZero() {
		return Query{}, ErrZeroAuditTime
	}

	return Query{
		Zone:                 zone,
		AsOf:                 core.ToWarehouseTime(asOf),
		PerishableCategories: perishableCategories,
	}, nil
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
