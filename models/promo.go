package models

import (
	"strings"
	"time"
)

// PromoCodeLength is the exact length a promo code must have. Codes of any
// other length are rejected before any store access.
const PromoCodeLength = 6

// PromoCode is a redeemable percentage-discount code.
type PromoCode struct {
	ID              string     `bson:"id" json:"id"`
	Code            string     `bson:"code" json:"code"` // stored uppercase
	DiscountPercent float64    `bson:"discount_percent" json:"discountPercent"`
	Active          bool       `bson:"active" json:"active"`
	ValidFrom       *time.Time `bson:"valid_from,omitempty" json:"validFrom,omitempty"`
	ValidTo         *time.Time `bson:"valid_to,omitempty" json:"validTo,omitempty"`
	MaxRedemptions  int        `bson:"max_redemptions" json:"maxRedemptions"` // 0 = unlimited
	Redemptions     int        `bson:"redemptions" json:"redemptions"`
	CreatedAt       time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time  `bson:"updated_at" json:"updatedAt"`
}

// Redeemable reports whether the code can be applied at the given time.
func (p PromoCode) Redeemable(now time.Time) bool {
	if !p.Active {
		return false
	}
	if p.ValidFrom != nil && now.Before(*p.ValidFrom) {
		return false
	}
	if p.ValidTo != nil && now.After(*p.ValidTo) {
		return false
	}
	if p.MaxRedemptions > 0 && p.Redemptions >= p.MaxRedemptions {
		return false
	}
	return true
}

// NormalizePromoCode uppercases and trims a user-supplied code.
func NormalizePromoCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// PromoResult is the apply-promo response payload. Prices are always
// explicit; clients never recompute them.
type PromoResult struct {
	Success        bool    `json:"success"`
	Discount       float64 `json:"discount"`
	NewPrice       float64 `json:"newPrice"`
	NewHelperPrice float64 `json:"newHelperPrice"`
}
