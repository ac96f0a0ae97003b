package models

import "time"

// MoveType classifies the kind of move being quoted.
type MoveType string

const (
	MoveTypeStudent MoveType = "student"
	MoveTypeHouse   MoveType = "house"
	MoveTypeCourier MoveType = "courier"
)

// Valid reports whether the move type is one of the supported values.
func (m MoveType) Valid() bool {
	switch m {
	case MoveTypeStudent, MoveTypeHouse, MoveTypeCourier:
		return true
	}
	return false
}

// Payment status values carried on a booking.
const (
	PaymentStatusUnpaid  = "unpaid"
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// Booking represents one customer's requested move, keyed by a server-issued id.
type Booking struct {
	ID                  string           `bson:"id" json:"_id"`
	StartLocation       string           `bson:"start_location" json:"startLocation"`
	DestinationLocation string           `bson:"destination_location" json:"destinationLocation"`
	MoveType            MoveType         `bson:"move_type" json:"moveType"`
	Date                string           `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time                string           `bson:"time" json:"time"` // e.g. "09:00 - 11:00"
	Details             InventoryDetails `bson:"details" json:"details"`
	Distance            float64          `bson:"distance" json:"distance"` // miles

	// Current prices; equal to the originals until a promo is applied.
	Price       float64 `bson:"price" json:"price"`
	HelperPrice float64 `bson:"helper_price" json:"helperprice"`

	// Server-issued originals, immutable for the life of the booking.
	OriginalPrice       float64 `bson:"original_price" json:"originalPrice"`
	OriginalHelperPrice float64 `bson:"original_helper_price" json:"originalHelperPrice"`

	DiscountPercent float64 `bson:"discount_percent" json:"discountPercent"`
	PromoCode       string  `bson:"promo_code,omitempty" json:"promoCode,omitempty"`

	PaymentStatus     string `bson:"payment_status" json:"paymentStatus"`
	CheckoutSessionID string `bson:"checkout_session_id,omitempty" json:"checkoutSessionId,omitempty"`
	WithHelper        bool   `bson:"with_helper" json:"withHelper"`

	// Set when the booking was priced out of a wizard session, so payment
	// progress can advance that session.
	QuoteSessionID string `bson:"quote_session_id,omitempty" json:"quoteSessionId,omitempty"`

	Contact *ContactInfo `bson:"contact,omitempty" json:"contact,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Pricing returns the booking's pricing state snapshot.
func (b *Booking) Pricing() PricingState {
	return PricingState{
		OriginalPrice:       b.OriginalPrice,
		OriginalHelperPrice: b.OriginalHelperPrice,
		CurrentPrice:        b.Price,
		CurrentHelperPrice:  b.HelperPrice,
		DiscountPercent:     b.DiscountPercent,
	}
}
