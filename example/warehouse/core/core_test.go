package core_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warespec/specification-go/example/warehouse/core"
)

func validProduct(t *testing.T) core.Product {
	t.Helper()

	product, err := core.BuildProduct(uuid.New(), "SKU-1001", "euro pallet", "equipment", 2495, 22000)
	require.NoError(t, err)

	return product
}

//nolint:funlen
func Test_BuildProduct_Validation(t *testing.T) {
	tests := []struct {
		name        string
		sku         core.SKUString
		productName string
		priceCents  int64
		weightGrams int64
		expectedErr error
	}{
		{
			name:        "valid_product",
			sku:         "SKU-1001",
			productName: "euro pallet",
			priceCents:  2495,
			weightGrams: 22000,
		},
		{
			name:        "empty_sku_is_rejected",
			sku:         "",
			productName: "euro pallet",
			priceCents:  2495,
			weightGrams: 22000,
			expectedErr: core.ErrEmptySKU,
		},
		{
			name:        "empty_name_is_rejected",
			sku:         "SKU-1001",
			productName: "",
			priceCents:  2495,
			weightGrams: 22000,
			expectedErr: core.ErrEmptyProductName,
		},
		{
			name:        "negative_price_is_rejected",
			sku:         "SKU-1001",
			productName: "euro pallet",
			priceCents:  -1,
			weightGrams: 22000,
			expectedErr: core.ErrNegativeUnitPrice,
		},
		{
			name:        "negative_weight_is_rejected",
			sku:         "SKU-1001",
			productName: "euro pallet",
			priceCents:  2495,
			weightGrams: -1,
			expectedErr: core.ErrNegativeWeight,
		},
		{
			name:        "zero_price_and_weight_are_accepted",
			sku:         "SKU-1001",
			productName: "euro pallet",
			priceCents:  0,
			weightGrams: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := core.BuildProduct(uuid.New(), tt.sku, tt.productName, "equipment", tt.priceCents, tt.weightGrams)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, product.SKU)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.sku, product.SKU)
			assert.NotEmpty(t, product.ID)
		})
	}
}

func Test_BuildStockItem_Validation(t *testing.T) {
	receivedAt := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		product     func(t *testing.T) core.Product
		quantity    int
		zone        core.ZoneString
		expectedErr error
	}{
		{
			name:     "valid_stock_item",
			product:  validProduct,
			quantity: 12,
			zone:     "A",
		},
		{
			name:        "unbuilt_product_is_rejected",
			product:     func(*testing.T) core.Product { return core.Product{} },
			quantity:    12,
			zone:        "A",
			expectedErr: core.ErrMissingProduct,
		},
		{
			name:        "negative_quantity_is_rejected",
			product:     validProduct,
			quantity:    -1,
			zone:        "A",
			expectedErr: core.ErrNegativeQuantity,
		},
		{
			name:        "empty_zone_is_rejected",
			product:     validProduct,
			quantity:    12,
			zone:        "",
			expectedErr: core.ErrEmptyZone,
		},
		{
			name:     "zero_quantity_is_accepted",
			product:  validProduct,
			quantity: 0,
			zone:     "A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := core.BuildStockItem(uuid.New(), tt.product(t), tt.quantity, tt.zone, "S-01", receivedAt, time.Time{})

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.quantity, item.Quantity)
			assert.Equal(t, receivedAt, item.ReceivedAt)
			assert.True(t, item.BestBefore.IsZero())
		})
	}
}

func Test_StockItem_Fields_FlattensForSQLSpec(t *testing.T) {
	bestBefore := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	item, err := core.BuildStockItem(uuid.New(), validProduct(t), 12, "A", "S-01", time.Now(), bestBefore)
	require.NoError(t, err)

	fields := item.Fields()

	assert.Equal(t, "SKU-1001", fields["sku"])
	assert.Equal(t, 12, fields["quantity"])
	assert.Equal(t, "A", fields["zone"])
	assert.Equal(t, bestBefore, fields["best_before"])
}

func Test_StockItem_Fields_OmitsZeroBestBefore(t *testing.T) {
	item, err := core.BuildStockItem(uuid.New(), validProduct(t), 12, "A", "S-01", time.Now(), time.Time{})
	require.NoError(t, err)

	_, present := item.Fields()["best_before"]

	assert.False(t, present)
}

func Test_BuildQuantityRange_Validation(t *testing.T) {
	tests := []struct {
		name        string
		min         int
		max         int
		expectedErr error
	}{
		{name: "valid_range", min: 1, max: 100},
		{name: "single_value_range", min: 5, max: 5},
		{name: "max_below_min_is_rejected", min: 10, max: 5, expectedErr: core.ErrInvalidQuantityRange},
		{name: "negative_min_is_rejected", min: -1, max: 5, expectedErr: core.ErrNegativeQuantityBound},
		{name: "negative_max_is_rejected", min: 0, max: -5, expectedErr: core.ErrNegativeQuantityBound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quantityRange, err := core.BuildQuantityRange(tt.min, tt.max)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.min, quantityRange.Min())
			assert.Equal(t, tt.max, quantityRange.Max())
		})
	}
}

func Test_QuantityRange_Contains(t *testing.T) {
	quantityRange, err := core.BuildQuantityRange(1, 100)
	require.NoError(t, err)

	assert.False(t, quantityRange.Contains(0))
	assert.True(t, quantityRange.Contains(1))
	assert.True(t, quantityRange.Contains(50))
	assert.True(t, quantityRange.Contains(100))
	assert.False(t, quantityRange.Contains(101))
}
