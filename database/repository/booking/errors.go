package bookingRepo

import "errors"

// ErrNotFound is returned when no booking matches the query.
var ErrNotFound = errors.New("booking not found")
