package promo

import "errors"

var (
	// ErrInvalidCodeLength is returned for codes that are not exactly six
	// characters. The store is never consulted for these.
	ErrInvalidCodeLength = errors.New("promo code must be exactly 6 characters")

	// ErrInvalidCode is returned when the code does not exist or cannot be
	// redeemed right now.
	ErrInvalidCode = errors.New("invalid promo code")

	// ErrTooManyAttempts is returned when a booking has accumulated too many
	// failed promo attempts inside the throttle window.
	ErrTooManyAttempts = errors.New("too many promo attempts, try again later")

	// ErrPaymentStarted is returned once checkout has begun: the price is
	// locked to the amount the payment provider was given.
	ErrPaymentStarted = errors.New("promo codes cannot be applied after checkout has started")
)
