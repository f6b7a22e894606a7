package core

import (
	"time"
)

// Instead of implementing full value objects, some alias types and helper methods are used here ...

// SKUString represents a stock keeping unit identifier
type SKUString = string

// CategoryString represents a product category
type CategoryString = string

// ZoneString represents a warehouse zone identifier
type ZoneString = string

// ShelfString represents a shelf identifier within a zone
type ShelfString = string

// ReceivedAtTS represents when a stock item arrived in the warehouse
type ReceivedAtTS = time.Time

// BestBeforeTS represents the expiry boundary of a stock item; the zero value means no expiry
type BestBeforeTS = time.Time

// ToWarehouseTime converts a time to UTC with microsecond precision, the precision kept by warehouse records
func ToWarehouseTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
