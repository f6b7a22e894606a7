package catalog_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warespec/specification-go/example/warehouse/catalog"
	"github.com/warespec/specification-go/example/warehouse/core"
	"github.com/warespec/specification-go/example/warehouse/rules"
	"github.com/warespec/specification-go/specification"
)

func Test_LoadSampleStock_ReturnsValidatedStockItems(t *testing.T) {
	stock, err := catalog.LoadSampleStock()
	require.NoError(t, err)
	require.NotEmpty(t, stock)

	for _, item := range stock {
		assert.NotEmpty(t, item.ID)
		assert.NotEmpty(t, item.Product.SKU)
		assert.NotEmpty(t, item.Product.Name)
		assert.NotEmpty(t, item.Zone)
		assert.GreaterOrEqual(t, item.Quantity, 0)
	}
}

func Test_LoadSampleStock_ContainsItemsForEveryScenario(t *testing.T) {
	stock, err := catalog.LoadSampleStock()
	require.NoError(t, err)

	outOfStock, err := rules.OutOfStock()
	require.NoError(t, err)

	lowStock, err := rules.LowStock(5)
	require.NoError(t, err)

	hasNoExpiry, err := specification.Satisfying(func(item core.StockItem) bool {
		return item.BestBefore.IsZero()
	})
	require.NoError(t, err)

	assert.True(t, specification.Any(slices.Values(stock), outOfStock))
	assert.True(t, specification.Any(slices.Values(stock), lowStock))
	assert.True(t, specification.Any(slices.Values(stock), hasNoExpiry))
}
