package quote

import "errors"

var (
	// ErrSameLocation is returned when pickup and destination are identical
	// after trimming and lowercasing.
	ErrSameLocation = errors.New("start and destination locations are the same")

	// ErrMissingLocation is returned when either address is empty.
	ErrMissingLocation = errors.New("both start and destination locations are required")

	// ErrInvalidMoveType is returned for an unknown move type.
	ErrInvalidMoveType = errors.New("move type must be student, house or courier")

	// ErrInvalidInventory is returned when the inventory fails validation.
	ErrInvalidInventory = errors.New("inventory must contain at least one complete item")

	// ErrDateUnavailable is returned when the requested date is blacked out.
	ErrDateUnavailable = errors.New("selected date is not available")

	// ErrSlotUnavailable is returned when the requested time slot is taken.
	ErrSlotUnavailable = errors.New("selected time slot is not available")

	// ErrInvalidStage is returned when an action arrives out of wizard order.
	ErrInvalidStage = errors.New("action not allowed at current quote stage")

	// ErrSessionNotFound is returned when a quote session is missing or expired.
	ErrSessionNotFound = errors.New("quote session not found or expired")
)
