package models

// CheckoutRequest asks for a Stripe Checkout session for a booking.
type CheckoutRequest struct {
	Amount   float64 `json:"amount" binding:"required"`
	Language string  `json:"language"` // "en" or "zh"; defaults to "en"
}

// CheckoutSessionResponse is the single normalized shape the checkout
// endpoints answer with.
type CheckoutSessionResponse struct {
	SessionID string `json:"sessionId"`
}
