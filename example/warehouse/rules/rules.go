package rules

import (
	"errors"
	"time"

	"github.com/warespec/specification-go/example/warehouse/core"
	"github.com/warespec/specification-go/specification"
)

var (
	// ErrEmptyCategory is returned when InCategory is given an empty category.
	ErrEmptyCategory = errors.New("category must not be empty")

	// ErrNegativeThreshold is returned when a rule is given a negative threshold.
	ErrNegativeThreshold = errors.New("threshold must not be negative")

	// ErrZeroDeadline is returned when ExpiresBefore is given the zero time.
	ErrZeroDeadline = errors.New("deadline must not be the zero time")

	// ErrEmptyRuleZone is returned when StoredIn is given an empty zone.
	ErrEmptyRuleZone = errors.New("zone must not be empty")
)

// StockSpecification is an alias type for a specification over stock items
type StockSpecification = specification.Specification[core.StockItem]

// InCategory is satisfied by stock items whose product belongs to the given category.
func InCategory(category core.CategoryString) (StockSpecification, error) {
	if category == "" {
		return StockSpecification{}, ErrEmptyCategory
	}

	return specification.Satisfying(func(item core.StockItem) bool {
		return item.Product.Category == category
	})
}

// LowStock is satisfied by stock items that are present but at or below the
// threshold. Items with zero quantity are out of stock, not low, and do not satisfy it.
func LowStock(threshold int) (StockSpecification, error) {
	if threshold < 0 {
		return StockSpecification{}, ErrNegativeThreshold
	}

	return specification.Satisfying(func(item core.StockItem) bool {
		return item.Quantity > 0 && item.Quantity <= threshold
	})
}

// OutOfStock is satisfied by stock items with zero quantity.
func OutOfStock() (StockSpecification, error) {
	return specification.Satisfying(func(item core.StockItem) bool {
		return item.Quantity == 0
	})
}

// QuantityWithin is satisfied by stock items whose quantity lies within the range.
// The range itself was validated by core.BuildQuantityRange.
func QuantityWithin(quantityRange core.QuantityRange) (StockSpecification, error) {
	return specification.Satisfying(func(item core.StockItem) bool {
		return quantityRange.Contains(item.Quantity)
	})
}

// ExpiresBefore is satisfied by stock items with a best-before boundary strictly
// before the deadline. Items without an expiry (zero BestBefore) never satisfy it.
func ExpiresBefore(deadline time.Time) (StockSpecification, error) {
	if deadline.IsZero() {
		return StockSpecification{}, ErrZeroDeadline
	}

	normalizedDeadline := core.ToWarehouseTime(deadline)

	return specification.Satisfying(func(item core.StockItem) bool {
		if item.BestBefore.IsZero() {
			return false
		}

		return item.BestBefore.Before(normalizedDeadline)
	})
}

// HeavierThan is satisfied by stock items whose product unit weight exceeds the
// given weight in grams.
func HeavierThan(weightGrams int64) (StockSpecification, error) {
	if weightGrams < 0 {
		return StockSpecification{}, ErrNegativeThreshold
	}

	return specification.Satisfying(func(item core.StockItem) bool {
		return item.Product.WeightGrams > weightGrams
	})
}

// StoredIn is satisfied by stock items stored in the given warehouse zone.
func StoredIn(zone core.ZoneString) (StockSpecification, error) {
	if zone == "" {
		return StockSpecification{}, ErrEmptyRuleZone
	}

	return specification.Satisfying(func(item core.StockItem) bool {
		return item.Zone == zone
	})
}

// PriceAtLeast is satisfied by stock items whose product unit price is at least
// the given amount in cents.
func PriceAtLeast(unitPriceCents int64) (StockSpecification, error) {
	if unitPriceCents < 0 {
		return StockSpecification{}, ErrNegativeThreshold
	}

	return specification.Satisfying(func(item core.StockItem) bool {
		return item.Product.UnitPriceCents >= unitPriceCents
	})
}
