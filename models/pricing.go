package models

import (
	"fmt"
	"math"
)

// PricingState tracks the server-issued originals alongside the current
// (possibly discounted) prices for a booking.
type PricingState struct {
	OriginalPrice       float64 `json:"originalPrice"`
	OriginalHelperPrice float64 `json:"originalHelperPrice"`
	CurrentPrice        float64 `json:"currentPrice"`
	CurrentHelperPrice  float64 `json:"currentHelperPrice"`
	DiscountPercent     float64 `json:"discountPercent"`
}

// Round2 rounds a price to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ApplyDiscount returns a new pricing state with the percentage discount
// applied against the immutable originals. The originals never change; the
// current prices are always recomputed from them, so re-applying a code does
// not compound.
func (p PricingState) ApplyDiscount(percent float64) (PricingState, error) {
	if percent < 0 || percent > 100 {
		return p, fmt.Errorf("discount percent out of range: %.2f", percent)
	}
	next := PricingState{
		OriginalPrice:       p.OriginalPrice,
		OriginalHelperPrice: p.OriginalHelperPrice,
		CurrentPrice:        Round2(p.OriginalPrice * (1 - percent/100)),
		CurrentHelperPrice:  Round2(p.OriginalHelperPrice * (1 - percent/100)),
		DiscountPercent:     percent,
	}
	if next.DiscountPercent > 0 && next.CurrentPrice > next.OriginalPrice {
		return p, fmt.Errorf("discounted price %.2f exceeds original %.2f", next.CurrentPrice, next.OriginalPrice)
	}
	return next, nil
}
