package expiringstock

import (
	"time"

	"github.com/warespec/specification-go/example/warehouse/core"
)

// ExpiringItem represents a single stock item that expires within the window.
type ExpiringItem struct {
	SKU        core.SKUString
	Name       string
	Shelf      core.ShelfString
	Quantity   int
	BestBefore time.Time
}

// ZoneGroup represents the expiring items of one warehouse zone,
// ordered by best-before boundary (soonest first).
type ZoneGroup struct {
	Zone  core.ZoneString
	Items []ExpiringItem
}

// ExpiringStock represents the query result: expiring items grouped by zone,
// zones ordered alphabetically.
type ExpiringStock struct {
	Deadline time.Time
	Groups   []ZoneGroup
	Count    int
}
