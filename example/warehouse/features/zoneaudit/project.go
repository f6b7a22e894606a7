package zoneaudit

import (
	"cmp"
	"slices"

	"github.com/warespec/specification-go/example/warehouse/core"
	"github.com/warespec/specification-go/example/warehouse/rules"
	"github.com/warespec/specification-go/specification"
)

// ProjectZoneAudit implements the query logic to audit one warehouse zone.
// This is a pure function with no side effects - it takes the current stock
// and a query and returns the projected audit result.
//
// Query Logic:
//
//	GIVEN: The current list of stock items
//	WHEN: ZoneAudit query is executed
//	THEN: ZoneAudit struct is returned with the zone's occupancy and breaches
//	INCLUDES: Expired items and perishable items stored without an expiry
//	EXCLUDES: Items stored in other zones
func ProjectZoneAudit(stock core.StockItems, query Query) (ZoneAudit, error) {
	inZone, err := rules.StoredIn(query.Zone)
	if err != nil {
		return ZoneAudit{}, err
	}

	expired, err := rules.ExpiresBefore(query.AsOf)
	if err != nil {
		return ZoneAudit{}, err
	}

	missingExpiry, err := buildMissingExpirySpec(query.PerishableCategories)
	if err != nil {
		return ZoneAudit{}, err
	}

	zoneItems := specification.FilterSlice(stock, inZone)

	totalQuantity := 0
	breaches := make([]Breach, 0)

	for _, item := range zoneItems {
		totalQuantity += item.Quantity

		if expired.IsSatisfiedBy(item) {
			breaches = append(breaches, Breach{SKU: item.Product.SKU, Shelf: item.Shelf, Reason: BreachExpired})
		}

		if missingExpiry.IsSatisfiedBy(item) {
			breaches = append(breaches, Breach{SKU: item.Product.SKU, Shelf: item.Shelf, Reason: BreachMissingExpiry})
		}
	}

	slices.SortFunc(breaches, func(a, b Breach) int {
		if c := cmp.Compare(a.SKU, b.SKU); c != 0 {
			return c
		}

		return cmp.Compare(a.Reason, b.Reason)
	})

	return ZoneAudit{
		Zone:          query.Zone,
		ItemCount:     len(zoneItems),
		TotalQuantity: totalQuantity,
		Breaches:      breaches,
	}, nil
}

// buildMissingExpirySpec composes the perishable-without-expiry breach rule.
//
// An item is compliant when it has an expiry OR is not perishable; the breach
// rule is the negation of that. With no perishable categories configured the
// rule is satisfied by nothing.
func buildMissingExpirySpec(perishableCategories []core.CategoryString) (rules.StockSpecification, error) {
	if len(perishableCategories) == 0 {
		return specification.Satisfying(func(_ core.StockItem) bool { return false })
	}

	perishable, err := buildPerishableSpec(perishableCategories)
	if err != nil {
		return rules.StockSpecification{}, err
	}

	hasExpiry, err := specification.Satisfying(func(item core.StockItem) bool {
		return !item.BestBefore.IsZero()
	})
	if err != nil {
		return rules.StockSpecification{}, err
	}

	compliant, err := hasExpiry.OrNot(perishable)
	if err != nil {
		return rules.StockSpecification{}, err
	}

	return compliant.Not()
}

// buildPerishableSpec ors together one InCategory rule per perishable category.
func buildPerishableSpec(perishableCategories []core.CategoryString) (rules.StockSpecification, error) {
	perishable, err := rules.InCategory(perishableCategories[0])
	if err != nil {
		return rules.StockSpecification{}, err
	}

	for _, category := range perishableCategories[1:] {
		next, nextErr := rules.InCategory(category)
		if nextErr != nil {
			return rules.StockSpecification{}, nextErr
		}

		perishable, err = perishable.Or(next)
		if err != nil {
			return rules.StockSpecification{}, err
		}
	}

	return perishable, nil
}
