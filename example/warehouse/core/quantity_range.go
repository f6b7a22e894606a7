package core

import (
	"errors"
)

var (
	// ErrNegativeQuantityBound is returned when a quantity range is built with a negative bound.
	ErrNegativeQuantityBound = errors.New("quantity range bounds must not be negative")

	// ErrInvalidQuantityRange is returned when a quantity range is built with max lower than min.
	ErrInvalidQuantityRange = errors.New("quantity range max must not be lower than min")
)

// QuantityRange represents an inclusive quantity interval. Immutable once
// constructed; it should only be built with BuildQuantityRange.
type QuantityRange struct {
	min int
	max int
}

// BuildQuantityRange is a factory method for QuantityRange.
//
// It validates the input:
//   - min and max must not be negative
//   - max must not be lower than min
func BuildQuantityRange(min, max int) (QuantityRange, error) {
	if min < 0 || max < 0 {
		return QuantityRange{}, ErrNegativeQuantityBound
	}

	if max < min {
		return QuantityRange{}, ErrInvalidQuantityRange
	}

	return QuantityRange{min: min, max: max}, nil
}

// Min returns the inclusive lower bound.
func (r QuantityRange) Min() int {
	return r.min
}

// Max returns the inclusive upper bound.
func (r QuantityRange) Max() int {
	return r.max
}

// Contains reports whether quantity lies within the range, bounds included.
func (r QuantityRange) Contains(quantity int) bool {
	return quantity >= r.min && quantity <= r.max
}
