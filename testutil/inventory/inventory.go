// Package inventory provides deterministic stock fixtures for tests.
package inventory

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/warespec/specification-go/example/warehouse/core"
)

const (
	defaultUnitPriceCents = 999
	defaultWeightGrams    = 500
	defaultShelf          = "S-01"
)

func GivenUniqueID(t testing.TB) uuid.UUID {
	id, err := uuid.NewV7()
	assert.NoError(t, err, "error in arranging test data")

	return id
}

func FixtureProduct(t testing.TB, sku core.SKUString, category core.CategoryString) core.Product {
	return FixtureProductPriced(t, sku, category, defaultUnitPriceCents, defaultWeightGrams)
}

func FixtureProductPriced(
	t testing.TB,
	sku core.SKUString,
	category core.CategoryString,
	unitPriceCents int64,
	weightGrams int64,
) core.Product {

	product, err := core.BuildProduct(GivenUniqueID(t), sku, "Product "+sku, category, unitPriceCents, weightGrams)
	assert.NoError(t, err, "error in arranging test data")

	return product
}

func FixtureStockItem(
	t testing.TB,
	product core.Product,
	quantity int,
	zone core.ZoneString,
	bestBefore time.Time,
) core.StockItem {

	item, err := core.BuildStockItem(
		GivenUniqueID(t),
		product,
		quantity,
		zone,
		defaultShelf,
		core.ToWarehouseTime(time.Now()),
		bestBefore,
	)
	assert.NoError(t, err, "error in arranging test data")

	return item
}

// GivenStockItem is the one-call fixture for tests that do not care about the product details.
func GivenStockItem(
	t testing.TB,
	sku core.SKUString,
	quantity int,
	zone core.ZoneString,
	bestBefore time.Time,
) core.StockItem {

	return FixtureStockItem(t, FixtureProduct(t, sku, "dry-goods"), quantity, zone, bestBefore)
}
