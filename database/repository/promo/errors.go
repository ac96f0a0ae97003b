package promoRepo

import "errors"

// ErrNotFound is returned when no promo code matches.
var ErrNotFound = errors.New("promo code not found")
