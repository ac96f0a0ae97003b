package confirmation

import (
	"context"

	bookingRepo "swiftmove/database/repository/booking"
	"swiftmove/models"

	"go.uber.org/zap"
)

// DedupStore is the idempotency gate in front of confirmation sends. Acquire
// succeeds at most once per booking per dedup window.
type DedupStore interface {
	Acquire(ctx context.Context, bookingID string) (bool, error)
	Release(ctx context.Context, bookingID string) error
}

// Queue hands confirmation deliveries to the background worker.
type Queue interface {
	EnqueueConfirmation(ctx context.Context, booking *models.Booking) error
}

// SendResult reports what a confirmation trigger did.
type SendResult struct {
	Sent        bool `json:"sent"`
	AlreadySent bool `json:"alreadySent"`
}

// ConfirmationService fetches bookings for the result page and triggers
// confirmation sends idempotently.
type ConfirmationService interface {
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	SendConfirmation(ctx context.Context, bookingID string) (*SendResult, error)
}

// DefaultConfirmationService implements ConfirmationService.
type DefaultConfirmationService struct {
	BookingRepo bookingRepo.BookingRepository
	Dedup       DedupStore
	Queue       Queue
	Logger      *zap.Logger
}
