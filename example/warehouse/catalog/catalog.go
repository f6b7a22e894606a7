// Package catalog provides the embedded sample inventory used by the demo
// application and by tests that want realistic stock data.
//
// The raw JSON is never handed out directly: every product and stock item
// passes through the core Build factories, so a loaded catalog satisfies the
// same validation guarantees as stock built by hand.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/warespec/specification-go/example/warehouse/core"
)

//go:embed sample_inventory.json
var sampleInventoryFS embed.FS

const sampleInventoryFile = "sample_inventory.json"

var (
	// ErrUnknownCatalogSKU is returned when a stock item references a SKU
	// that has no product entry.
	ErrUnknownCatalogSKU = errors.New("stock item references unknown sku")

	// ErrLoadingCatalogFailed wraps any parse or validation error hit while loading.
	ErrLoadingCatalogFailed = errors.New("loading sample inventory failed")
)

type productRecord struct {
	ID             string `json:"id"`
	SKU            string `json:"sku"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	WeightGrams    int64  `json:"weight_grams"`
}

type stockItemRecord struct {
	ID         string    `json:"id"`
	SKU        string    `json:"sku"`
	Quantity   int       `json:"quantity"`
	Zone       string    `json:"zone"`
	Shelf      string    `json:"shelf"`
	ReceivedAt time.Time `json:"received_at"`
	BestBefore time.Time `json:"best_before"`
}

type inventoryRecord struct {
	Products   []productRecord   `json:"products"`
	StockItems []stockItemRecord `json:"stock_items"`
}

// LoadSampleStock loads the embedded sample inventory and returns the stock
// items it describes, in file order.
func LoadSampleStock() (core.StockItems, error) {
	rawJSON, err := sampleInventoryFS.ReadFile(sampleInventoryFile)
	if err != nil {
		return nil, errors.Join(ErrLoadingCatalogFailed, err)
	}

	var inventory inventoryRecord
	if err = jsoniter.ConfigFastest.Unmarshal(rawJSON, &inventory); err != nil {
		return nil, errors.Join(ErrLoadingCatalogFailed, err)
	}

	productsBySKU := make(map[core.SKUString]core.Product, len(inventory.Products))

	for _, record := range inventory.Products {
		product, buildErr := buildProductFromRecord(record)
		if buildErr != nil {
			return nil, errors.Join(ErrLoadingCatalogFailed, buildErr)
		}

		productsBySKU[product.SKU] = product
	}

	stock := make(core.StockItems, 0, len(inventory.StockItems))

	for _, record := range inventory.StockItems {
		product, found := productsBySKU[record.SKU]
		if !found {
			return nil, errors.Join(
				ErrLoadingCatalogFailed,
				fmt.Errorf("%w: %s", ErrUnknownCatalogSKU, record.SKU),
			)
		}

		item, buildErr := buildStockItemFromRecord(record, product)
		if buildErr != nil {
			return nil, errors.Join(ErrLoadingCatalogFailed, buildErr)
		}

		stock = append(stock, item)
	}

	return stock, nil
}

func buildProductFromRecord(record productRecord) (core.Product, error) {
	id, err := uuid.Parse(record.ID)
	if err != nil {
		return core.Product{}, err
	}

	return core.BuildProduct(
		id,
		record.SKU,
		record.Name,
		record.Category,
		record.UnitPriceCents,
		record.WeightGrams,
	)
}

func buildStockItemFromRecord(record stockItemRecord, product core.Product) (core.StockItem, error) {
	id, err := uuid.Parse(record.ID)
	if err != nil {
		return core.StockItem{}, err
	}

	return core.BuildStockItem(
		id,
		product,
		record.Quantity,
		record.Zone,
		record.Shelf,
		record.ReceivedAt,
		record.BestBefore,
	)
}
