package reorderreport

import (
	"cmp"
	"slices"

	"github.com/warespec/specification-go/example/warehouse/core"
	"github.com/warespec/specification-go/example/warehouse/rules"
	"github.com/warespec/specification-go/specification"
)

// ProjectReorderReport implements the query logic to determine which stock items
// need reordering. This is a pure function with no side effects - it takes the
// current stock and a query and returns the projected report.
//
// Query Logic:
//
//	GIVEN: The current list of stock items
//	WHEN: ReorderReport query is executed
//	THEN: ReorderReport struct is returned, ordered by quantity (lowest first)
//	INCLUDES: Items that are out of stock or at/below the reorder threshold
//	EXCLUDES: Items stocked above the threshold
func ProjectReorderReport(stock core.StockItems, query Query) (ReorderReport, error) {
	needsReorder, err := buildNeedsReorderSpec(query.Threshold)
	if err != nil {
		return ReorderReport{}, err
	}

	lines := make([]ReorderLine, 0)

	for _, item := range specification.FilterSlice(stock, needsReorder) {
		lines = append(lines, ReorderLine{
			SKU:        item.Product.SKU,
			Name:       item.Product.Name,
			Category:   item.Product.Category,
			Zone:       item.Zone,
			Shelf:      item.Shelf,
			Quantity:   item.Quantity,
			OutOfStock: item.Quantity == 0,
		})
	}

	slices.SortFunc(lines, func(a, b ReorderLine) int {
		if c := cmp.Compare(a.Quantity, b.Quantity); c != 0 {
			return c
		}

		return cmp.Compare(a.SKU, b.SKU)
	})

	return ReorderReport{
		Threshold: query.Threshold,
		Lines:     lines,
		Count:     len(lines),
	}, nil
}

// buildNeedsReorderSpec composes the reorder rule: out of stock OR low stock.
func buildNeedsReorderSpec(threshold int) (rules.StockSpecification, error) {
	outOfStock, err := rules.OutOfStock()
	if err != nil {
		return rules.StockSpecification{}, err
	}

	lowStock, err := rules.LowStock(threshold)
	if err != nil {
		return rules.StockSpecification{}, err
	}

	return outOfStock.Or(lowStock)
}
