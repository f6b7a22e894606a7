package core

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrEmptySKU is returned when a product is built with an empty SKU.
	ErrEmptySKU = errors.New("product sku must not be empty")

	// ErrEmptyProductName is returned when a product is built with an empty name.
	ErrEmptyProductName = errors.New("product name must not be empty")

	// ErrNegativeUnitPrice is returned when a product is built with a negative unit price.
	ErrNegativeUnitPrice = errors.New("product unit price must not be negative")

	// ErrNegativeWeight is returned when a product is built with a negative weight.
	ErrNegativeWeight = errors.New("product weight must not be negative")
)

// Product represents a product the warehouse keeps stock of.
//
// While its properties are exported, it should only be constructed with BuildProduct,
// which validates the input.
type Product struct {
	ID             string
	SKU            SKUString
	Name           string
	Category       CategoryString
	UnitPriceCents int64
	WeightGrams    int64
}

// BuildProduct is a factory method for Product.
//
// It validates the input:
//   - sku and name must not be empty
//   - unitPriceCents and weightGrams must not be negative
func BuildProduct(
	id uuid.UUID,
	sku SKUString,
	name string,
	category CategoryString,
	unitPriceCents int64,
	weightGrams int64,
) (Product, error) {

	if sku == "" {
		return Product{}, ErrEmptySKU
	}

	if name == "" {
		return Product{}, ErrEmptyProductName
	}

	if unitPriceCents < 0 {
		return Product{}, ErrNegativeUnitPrice
	}

	if weightGrams < 0 {
		return Product{}, ErrNegativeWeight
	}

	return Product{
		ID:             id.String(),
		SKU:            sku,
		Name:           name,
		Category:       category,
		UnitPriceCents: unitPriceCents,
		WeightGrams:    weightGrams,
	}, nil
}
