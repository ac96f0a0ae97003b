package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePromoCode(t *testing.T) {
	assert.Equal(t, "SAVE10", NormalizePromoCode("  save10 "))
	assert.Equal(t, "SAVE10", NormalizePromoCode("SAVE10"))
}

func TestPromoCodeRedeemable(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name string
		code PromoCode
		want bool
	}{
		{"active no window", PromoCode{Active: true}, true},
		{"inactive", PromoCode{Active: false}, false},
		{"inside window", PromoCode{Active: true, ValidFrom: &past, ValidTo: &future}, true},
		{"not yet valid", PromoCode{Active: true, ValidFrom: &future}, false},
		{"expired", PromoCode{Active: true, ValidTo: &past}, false},
		{"redemptions left", PromoCode{Active: true, MaxRedemptions: 5, Redemptions: 4}, true},
		{"exhausted", PromoCode{Active: true, MaxRedemptions: 5, Redemptions: 5}, false},
		{"unlimited redemptions", PromoCode{Active: true, MaxRedemptions: 0, Redemptions: 1000}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.code.Redeemable(now))
		})
	}
}
