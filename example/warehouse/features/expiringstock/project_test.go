package expiringstock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warespec/specification-go/example/warehouse/core"
	"github.com/warespec/specification-go/example/warehouse/features/expiringstock"
	"github.com/warespec/specification-go/testutil/inventory"
)

func givenStockItem(
	t *testing.T,
	sku core.SKUString,
	quantity int,
	zone core.ZoneString,
	bestBefore time.Time,
) core.StockItem {

	t.Helper()

	return inventory.FixtureStockItem(t, inventory.FixtureProduct(t, sku, "cooling"), quantity, zone, bestBefore)
}

func Test_BuildQuery_RejectsInvalidParameters(t *testing.T) {
	_, err := expiringstock.BuildQuery(time.Time{}, 24*time.Hour)
	assert.ErrorIs(t, err, expiringstock.ErrZeroReferenceTime)

	_, err = expiringstock.BuildQuery(time.Now(), 0)
	assert.ErrorIs(t, err, expiringstock.ErrNonPositiveWindow)

	_, err = expiringstock.BuildQuery(time.Now(), -time.Hour)
	assert.ErrorIs(t, err, expiringstock.ErrNonPositiveWindow)
}

func Test_ProjectExpiringStock_GroupsItemsByZone(t *testing.T) {
	asOf := core.ToWarehouseTime(time.Now())

	stock := core.StockItems{
		givenStockItem(t, "SKU-1001", 10, "B", asOf.Add(12*time.Hour)),
		givenStockItem(t, "SKU-1002", 10, "A", asOf.Add(36*time.Hour)),
		givenStockItem(t, "SKU-1003", 10, "A", asOf.Add(6*time.Hour)),
		givenStockItem(t, "SKU-1004", 10, "A", asOf.Add(96*time.Hour)), // outside the window
	}

	query, err := expiringstock.BuildQuery(asOf, 48*time.Hour)
	require.NoError(t, err)

	result, err := expiringstock.ProjectExpiringStock(stock, query)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Count)
	require.Len(t, result.Groups, 2)

	assert.Equal(t, core.ZoneString("A"), result.Groups[0].Zone)
	require.Len(t, result.Groups[0].Items, 2)
	assert.Equal(t, core.SKUString("SKU-1003"), result.Groups[0].Items[0].SKU)
	assert.Equal(t, core.SKUString("SKU-1002"), result.Groups[0].Items[1].SKU)

	assert.Equal(t, core.ZoneString("B"), result.Groups[1].Zone)
	require.Len(t, result.Groups[1].Items, 1)
}

func Test_ProjectExpiringStock_ExcludesOutOfStockAndNonExpiringItems(t *testing.T) {
	asOf := core.ToWarehouseTime(time.Now())

	stock := core.StockItems{
		givenStockItem(t, "SKU-1001", 0, "A", asOf.Add(6*time.Hour)), // out of stock
		givenStockItem(t, "SKU-1002", 10, "A", time.Time{}),          // no expiry
		givenStockItem(t, "SKU-1003", 10, "A", asOf.Add(6*time.Hour)),
	}

	query, err := expiringstock.BuildQuery(asOf, 48*time.Hour)
	require.NoError(t, err)

	result, err := expiringstock.ProjectExpiringStock(stock, query)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Count)
	require.Len(t, result.Groups, 1)
	require.Len(t, result.Groups[0].Items, 1)
	assert.Equal(t, core.SKUString("SKU-1003"), result.Groups[0].Items[0].SKU)
}

func Test_ProjectExpiringStock_ReturnsEmptyResultForEmptyStock(t *testing.T) {
	query, err := expiringstock.BuildQuery(time.Now(), 48*time.Hour)
	require.NoError(t, err)

	result, err := expiringstock.ProjectExpiringStock(core.StockItems{}, query)
	require.NoError(t, err)

	assert.Zero(t, result.Count)
	assert.Empty(t, result.Groups)
}
