package reorderreport

import (
	"github.com/warespec/specification-go/example/warehouse/core"
)

// ReorderLine represents a single stock item that needs reordering.
type ReorderLine struct {
	SKU        core.SKUString
	Name       string
	Category   core.CategoryString
	Zone       core.ZoneString
	Shelf      core.ShelfString
	Quantity   int
	OutOfStock bool
}

// ReorderReport represents the query result containing all stock items
// that need reordering, ordered by urgency (lowest quantity first).
type ReorderReport struct {
	Threshold int
	Lines     []ReorderLine
	Count     int
}
