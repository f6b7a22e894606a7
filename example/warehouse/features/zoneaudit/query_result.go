package zoneaudit

import (
	"github.com/warespec/specification-go/example/warehouse/core"
)

// BreachReason classifies why a stock item breaches the zone rules.
type BreachReason string

const (
	// BreachExpired marks an item whose best-before boundary lies before the audit time.
	BreachExpired BreachReason = "expired"

	// BreachMissingExpiry marks a perishable item stored without a best-before boundary.
	BreachMissingExpiry BreachReason = "missing expiry"
)

// Breach represents a single rule breach found during the audit.
type Breach struct {
	SKU    core.SKUString
	Shelf  core.ShelfString
	Reason BreachReason
}

// ZoneAudit represents the query result for one zone: its occupancy and the
// rule breaches found, ordered by SKU.
type ZoneAudit struct {
	Zone          core.ZoneString
	ItemCount     int
	TotalQuantity int
	Breaches      []Breach
}
