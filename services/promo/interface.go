package promo

import (
	"context"

	bookingRepo "swiftmove/database/repository/booking"
	promoRepo "swiftmove/database/repository/promo"
	"swiftmove/models"

	"go.uber.org/zap"
)

// AttemptLimiter throttles failed promo attempts per booking.
type AttemptLimiter interface {
	TooManyAttempts(ctx context.Context, bookingID string) (bool, error)
	RecordFailure(ctx context.Context, bookingID string) error
}

// PromoService applies promo codes to bookings.
type PromoService interface {
	ApplyPromo(ctx context.Context, bookingID, code string) (*models.PromoResult, error)
}

// DefaultPromoService implements PromoService.
type DefaultPromoService struct {
	Repo        promoRepo.PromoRepository
	BookingRepo bookingRepo.BookingRepository
	Limiter     AttemptLimiter
	Logger      *zap.Logger
}
