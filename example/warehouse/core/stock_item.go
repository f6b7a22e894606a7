package core

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNegativeQuantity is returned when a stock item is built with a negative quantity.
	ErrNegativeQuantity = errors.New("stock item quantity must not be negative")

	// ErrEmptyZone is returned when a stock item is built with an empty zone.
	ErrEmptyZone = errors.New("stock item zone must not be empty")

	// ErrMissingProduct is returned when a stock item is built with an unbuilt product.
	ErrMissingProduct = errors.New("stock item product must be built with BuildProduct")
)

// StockItems is an alias type for a slice of StockItem
type StockItems = []StockItem

// StockItem represents a quantity of one product stored at one warehouse location.
//
// While its properties are exported, it should only be constructed with
// BuildStockItem, which validates the input. A zero BestBefore means the item does
// not expire.
type StockItem struct {
	ID         string
	Product    Product
	Quantity   int
	Zone       ZoneString
	Shelf      ShelfString
	ReceivedAt ReceivedAtTS
	BestBefore BestBeforeTS
}

// BuildStockItem is a factory method for StockItem.
//
// It validates the input:
//   - product must have been built with BuildProduct (non-empty SKU)
//   - quantity must not be negative
//   - zone must not be empty
func BuildStockItem(
	id uuid.UUID,
	product Product,
	quantity int,
	zone ZoneString,
	shelf ShelfString,
	receivedAt time.Time,
	bestBefore time.Time,
) (StockItem, error) {

	if product.SKU == "" {
		return StockItem{}, ErrMissingProduct
	}

	if quantity < 0 {
		return StockItem{}, ErrNegativeQuantity
	}

	if zone == "" {
		return StockItem{}, ErrEmptyZone
	}

	item := StockItem{
		ID:         id.String(),
		Product:    product,
		Quantity:   quantity,
		Zone:       zone,
		Shelf:      shelf,
		ReceivedAt: ToWarehouseTime(receivedAt),
	}

	if !bestBefore.IsZero() {
		item.BestBefore = ToWarehouseTime(bestBefore)
	}

	return item, nil
}

// Fields flattens the stock item into the candidate shape the sqlspec package
// evaluates and renders, keyed by the column names of a stock_items table.
func (si StockItem) Fields() map[string]any {
	fields := map[string]any{
		"id":               si.ID,
		"sku":              si.Product.SKU,
		"name":             si.Product.Name,
		"category":         si.Product.Category,
		"unit_price_cents": si.Product.UnitPriceCents,
		"weight_grams":     si.Product.WeightGrams,
		"quantity":         si.Quantity,
		"zone":             si.Zone,
		"shelf":            si.Shelf,
		"received_at":      si.ReceivedAt,
	}

	if !si.BestBefore.IsZero() {
		fields["best_before"] = si.BestBefore
	}

	return fields
}
