package catalogRepo

import "errors"

// ErrNotFound is returned when no catalog item matches.
var ErrNotFound = errors.New("price item not found")
