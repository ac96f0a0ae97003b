// File: utils/constants.go
package utils

import "time"

// ConfirmationDedupPrefix is the prefix for confirmation-send dedup keys.
const ConfirmationDedupPrefix = "messageSent:"

// ConfirmationDedupWindow suppresses repeat confirmation sends for a booking.
const ConfirmationDedupWindow = 5 * time.Minute

// PromoAttemptPrefix is the prefix for promo attempt throttle keys.
const PromoAttemptPrefix = "promoAttempts:"

// PromoAttemptWindow bounds how long failed promo attempts are counted.
const PromoAttemptWindow = 15 * time.Minute

// QuoteSessionTTL is the time-to-live for in-progress quote sessions.
const QuoteSessionTTL = 30 * time.Minute
