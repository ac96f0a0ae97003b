package promo

import (
	"context"
	"errors"
	"fmt"
	"time"

	promoRepo "swiftmove/database/repository/promo"
	"swiftmove/models"

	"go.uber.org/zap"
)

// ApplyPromo applies a six-character code to a booking. Discounted prices
// are always recomputed from the immutable originals, so re-applying a code
// never compounds the discount. The response carries explicit new prices.
func (s *DefaultPromoService) ApplyPromo(ctx context.Context, bookingID, code string) (*models.PromoResult, error) {
	normalized := models.NormalizePromoCode(code)
	if len(normalized) != models.PromoCodeLength {
		// Rejected before any store or limiter access.
		return nil, ErrInvalidCodeLength
	}

	if s.Limiter != nil {
		blocked, err := s.Limiter.TooManyAttempts(ctx, bookingID)
		if err != nil {
			// The throttle is best-effort; fail open.
			s.Logger.Warn("promo attempt limiter unavailable", zap.Error(err))
		} else if blocked {
			return nil, ErrTooManyAttempts
		}
	}

	booking, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.PaymentStatus != models.PaymentStatusUnpaid {
		// The checkout session already carries a price; changing it now
		// would desync the booking from what Stripe charges.
		return nil, ErrPaymentStarted
	}

	record, err := s.Repo.GetByCode(ctx, normalized)
	if errors.Is(err, promoRepo.ErrNotFound) {
		s.recordFailure(ctx, bookingID)
		return nil, ErrInvalidCode
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up promo code: %w", err)
	}
	if !record.Redeemable(time.Now()) {
		s.recordFailure(ctx, bookingID)
		return nil, ErrInvalidCode
	}

	pricing, err := booking.Pricing().ApplyDiscount(record.DiscountPercent)
	if err != nil {
		return nil, fmt.Errorf("failed to apply discount: %w", err)
	}

	if err := s.BookingRepo.UpdatePricing(ctx, bookingID, pricing, record.Code); err != nil {
		return nil, fmt.Errorf("failed to update booking pricing: %w", err)
	}

	if err := s.Repo.IncrementRedemptions(ctx, record.ID); err != nil {
		// The booking already carries the discount; a lost counter bump is
		// logged, not surfaced.
		s.Logger.Warn("failed to bump promo redemptions",
			zap.String("code", record.Code), zap.Error(err))
	}

	s.Logger.Info("promo applied",
		zap.String("bookingId", bookingID),
		zap.String("code", record.Code),
		zap.Float64("discount", record.DiscountPercent))

	return &models.PromoResult{
		Success:        true,
		Discount:       record.DiscountPercent,
		NewPrice:       pricing.CurrentPrice,
		NewHelperPrice: pricing.CurrentHelperPrice,
	}, nil
}

func (s *DefaultPromoService) recordFailure(ctx context.Context, bookingID string) {
	if s.Limiter == nil {
		return
	}
	if err := s.Limiter.RecordFailure(ctx, bookingID); err != nil {
		s.Logger.Warn("failed to record promo attempt", zap.Error(err))
	}
}
