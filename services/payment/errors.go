package payment

import "errors"

var (
	// ErrInvalidAmount is returned for a non-positive checkout amount.
	ErrInvalidAmount = errors.New("checkout amount must be positive")

	// ErrAmountMismatch is returned when the submitted amount does not match
	// the booking's current price for the chosen tier.
	ErrAmountMismatch = errors.New("checkout amount does not match booking price")

	// ErrAlreadyPaid is returned when checkout is requested for a paid booking.
	ErrAlreadyPaid = errors.New("booking is already paid")
)
