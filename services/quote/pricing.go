package quote

import (
	"math"

	"swiftmove/models"
)

// RateCard holds the tariffs the quote calculation prices against. Item
// prices come from the catalog; everything else lives here.
type RateCard struct {
	BaseCallout      map[models.MoveType]float64
	PerMile          float64
	BoxPriceSmall    float64
	BoxPriceMedium   float64
	BoxPriceLarge    float64
	BoxPriceXL       float64
	StairsPerFlight  float64 // surcharge per flight when no lift is available
	SpecialItemPrice float64
	FallbackItem     float64 // used when an item is missing from the catalog
	HelperPremium    float64 // flat premium for the with-helper tier
	DefaultDistance  map[models.MoveType]float64
}

// DefaultRateCard returns the standard tariffs.
func DefaultRateCard() RateCard {
	return RateCard{
		BaseCallout: map[models.MoveType]float64{
			models.MoveTypeStudent: 35,
			models.MoveTypeHouse:   60,
			models.MoveTypeCourier: 25,
		},
		PerMile:          1.8,
		BoxPriceSmall:    1.5,
		BoxPriceMedium:   2.5,
		BoxPriceLarge:    4,
		BoxPriceXL:       6,
		StairsPerFlight:  5,
		SpecialItemPrice: 25,
		FallbackItem:     10,
		HelperPremium:    40,
		DefaultDistance: map[models.MoveType]float64{
			models.MoveTypeStudent: 5,
			models.MoveTypeHouse:   8,
			models.MoveTypeCourier: 12,
		},
	}
}

const earthRadiusMiles = 3958.8

// Haversine returns the great-circle distance in miles between two points.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusMiles * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Distance resolves the move distance from the request coordinates, falling
// back to the per-move-type flat distance when any coordinate is missing.
func (rc RateCard) Distance(req models.QuoteRequest) float64 {
	if req.StartLat != nil && req.StartLng != nil && req.DestinationLat != nil && req.DestinationLng != nil {
		return models.Round2(Haversine(*req.StartLat, *req.StartLng, *req.DestinationLat, *req.DestinationLng))
	}
	return rc.DefaultDistance[req.MoveType]
}

// Price computes the base and helper prices for a quote. itemPrices maps
// catalog item names to their unit price; unknown items fall back to
// rc.FallbackItem.
func (rc RateCard) Price(req models.QuoteRequest, distance float64, itemPrices map[string]float64) (price, helperPrice float64) {
	total := rc.BaseCallout[req.MoveType] + distance*rc.PerMile

	boxes := req.Details.Boxes
	total += float64(boxes.Small)*rc.BoxPriceSmall +
		float64(boxes.Medium)*rc.BoxPriceMedium +
		float64(boxes.Large)*rc.BoxPriceLarge +
		float64(boxes.ExtraLarge)*rc.BoxPriceXL

	itemPrice := func(name string) float64 {
		if p, ok := itemPrices[name]; ok {
			return p
		}
		return rc.FallbackItem
	}
	for _, f := range req.Details.Furniture {
		total += float64(f.Quantity) * itemPrice(f.Item)
	}
	for _, a := range req.Details.Appliances {
		total += float64(a.Quantity) * itemPrice(a.Item)
	}
	total += float64(len(req.Details.SpecialItems)) * rc.SpecialItemPrice

	access := req.Details.FloorAccess
	if !access.PickupLift {
		total += float64(access.PickupStairs) * rc.StairsPerFlight
	}
	if !access.DestinationLift {
		total += float64(access.DestinationStairs) * rc.StairsPerFlight
	}

	price = models.Round2(total)
	helperPrice = models.Round2(total + rc.HelperPremium)
	return price, helperPrice
}
