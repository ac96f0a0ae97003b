package quote

import (
	"testing"

	"swiftmove/models"

	"github.com/stretchr/testify/assert"
)

func TestDistanceFallsBackPerMoveType(t *testing.T) {
	rc := DefaultRateCard()

	assert.Equal(t, 5.0, rc.Distance(models.QuoteRequest{MoveType: models.MoveTypeStudent}))
	assert.Equal(t, 8.0, rc.Distance(models.QuoteRequest{MoveType: models.MoveTypeHouse}))
	assert.Equal(t, 12.0, rc.Distance(models.QuoteRequest{MoveType: models.MoveTypeCourier}))
}

func TestDistanceFromCoordinates(t *testing.T) {
	rc := DefaultRateCard()
	// Manchester -> Leeds, roughly 36 miles great-circle.
	lat1, lng1 := 53.4808, -2.2426
	lat2, lng2 := 53.8008, -1.5491

	got := rc.Distance(models.QuoteRequest{
		MoveType:       models.MoveTypeHouse,
		StartLat:       &lat1,
		StartLng:       &lng1,
		DestinationLat: &lat2,
		DestinationLng: &lng2,
	})
	assert.InDelta(t, 36, got, 2)
}

func TestDistanceIgnoresPartialCoordinates(t *testing.T) {
	rc := DefaultRateCard()
	lat := 53.4808

	got := rc.Distance(models.QuoteRequest{MoveType: models.MoveTypeHouse, StartLat: &lat})
	assert.Equal(t, 8.0, got)
}

func TestHaversineZeroForSamePoint(t *testing.T) {
	assert.InDelta(t, 0, Haversine(53.48, -2.24, 53.48, -2.24), 1e-9)
}

func TestPriceBoxesAndBase(t *testing.T) {
	rc := DefaultRateCard()
	req := models.QuoteRequest{
		MoveType: models.MoveTypeHouse,
		Details: models.InventoryDetails{
			Boxes: models.BoxCounts{Small: 2, Medium: 1, Large: 1, ExtraLarge: 1},
			FloorAccess: models.FloorAccess{
				PickupLift:      true,
				DestinationLift: true,
			},
		},
	}

	// 60 base + 10*1.8 mileage + 3+2.5+4+6 boxes.
	price, helperPrice := rc.Price(req, 10, nil)
	assert.Equal(t, 93.5, price)
	assert.Equal(t, 133.5, helperPrice)
}

func TestPriceUsesCatalogWithFallback(t *testing.T) {
	rc := DefaultRateCard()
	req := models.QuoteRequest{
		MoveType: models.MoveTypeStudent,
		Details: models.InventoryDetails{
			Furniture: []models.FurnitureEntry{
				{Item: "Sofa", Quantity: 2},
				{Item: "Unknown Thing", Quantity: 1},
			},
			FloorAccess: models.FloorAccess{PickupLift: true, DestinationLift: true},
		},
	}

	// 35 base + 5*1.8 mileage + 2*30 catalog + 1*10 fallback.
	price, _ := rc.Price(req, 5, map[string]float64{"Sofa": 30})
	assert.Equal(t, 114.0, price)
}

func TestPriceStairsOnlyWithoutLift(t *testing.T) {
	rc := DefaultRateCard()
	base := models.QuoteRequest{
		MoveType: models.MoveTypeCourier,
		Details: models.InventoryDetails{
			Boxes: models.BoxCounts{Small: 1},
			FloorAccess: models.FloorAccess{
				PickupLift:        false,
				PickupStairs:      3,
				DestinationLift:   true,
				DestinationStairs: 4,
			},
		},
	}

	withStairs, _ := rc.Price(base, 2, nil)

	base.Details.FloorAccess.PickupLift = true
	withLift, _ := rc.Price(base, 2, nil)

	// Only the lift-less end pays the per-flight surcharge.
	assert.Equal(t, withLift+3*rc.StairsPerFlight, withStairs)
}

func TestPriceSpecialItems(t *testing.T) {
	rc := DefaultRateCard()
	req := models.QuoteRequest{
		MoveType: models.MoveTypeHouse,
		Details: models.InventoryDetails{
			SpecialItems: []models.SpecialItemEntry{
				{Type: "piano", Description: "upright"},
				{Type: "art", Description: "framed canvas"},
			},
			FloorAccess: models.FloorAccess{PickupLift: true, DestinationLift: true},
		},
	}

	price, _ := rc.Price(req, 0, nil)
	assert.Equal(t, 60+2*rc.SpecialItemPrice, price)
}

func TestPriceHelperPremiumIsFlat(t *testing.T) {
	rc := DefaultRateCard()
	req := models.QuoteRequest{
		MoveType: models.MoveTypeHouse,
		Details:  models.InventoryDetails{Boxes: models.BoxCounts{Small: 5}},
	}

	price, helperPrice := rc.Price(req, 8, nil)
	assert.Equal(t, rc.HelperPremium, models.Round2(helperPrice-price))
}
