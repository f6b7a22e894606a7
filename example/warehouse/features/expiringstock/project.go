package expiringstock

import (
	"cmp"
	"slices"

	"github.com/warespec/specification-go/example/warehouse/core"
	"github.com/warespec/specification-go/example/warehouse/rules"
	"github.com/warespec/specification-go/specification"
)

// ProjectExpiringStock implements the query logic to determine which stock items
// expire within the lookahead window. This is a pure function with no side
// effects - it takes the current stock and a query and returns the projected state.
//
// Query Logic:
//
//	GIVEN: The current list of stock items
//	WHEN: ExpiringStock query is executed
//	THEN: ExpiringStock struct is returned, grouped by zone
//	INCLUDES: Items with a best-before boundary before the window deadline
//	EXCLUDES: Items without an expiry and items that are already out of stock
func ProjectExpiringStock(stock core.StockItems, query Query) (ExpiringStock, error) {
	expiringAndStocked, err := buildExpiringAndStockedSpec(query)
	if err != nil {
		return ExpiringStock{}, err
	}

	itemsByZone := make(map[core.ZoneString][]ExpiringItem)
	count := 0

	for _, item := range specification.FilterSlice(stock, expiringAndStocked) {
		itemsByZone[item.Zone] = append(itemsByZone[item.Zone], ExpiringItem{
			SKU:        item.Product.SKU,
			Name:       item.Product.Name,
			Shelf:      item.Shelf,
			Quantity:   item.Quantity,
			BestBefore: item.BestBefore,
		})
		count++
	}

	groups := make([]ZoneGroup, 0, len(itemsByZone))
	for zone, items := range itemsByZone {
		slices.SortFunc(items, func(a, b ExpiringItem) int {
			if c := a.BestBefore.Compare(b.BestBefore); c != 0 {
				return c
			}

			return cmp.Compare(a.SKU, b.SKU)
		})

		groups = append(groups, ZoneGroup{Zone: zone, Items: items})
	}

	slices.SortFunc(groups, func(a, b ZoneGroup) int {
		return cmp.Compare(a.Zone, b.Zone)
	})

	return ExpiringStock{
		Deadline: query.Deadline(),
		Groups:   groups,
		Count:    count,
	}, nil
}

// buildExpiringAndStockedSpec composes the window rule: expiring before the
// deadline AND NOT out of stock.
func buildExpiringAndStockedSpec(query Query) (rules.StockSpecification, error) {
	expiresBeforeDeadline, err := rules.ExpiresBefore(query.Deadline())
	if err != nil {
		return rules.StockSpecification{}, err
	}

	outOfStock, err := rules.OutOfStock()
	if err != nil {
		return rules.StockSpecification{}, err
	}

	return expiresBeforeDeadline.AndNot(outOfStock)
}
