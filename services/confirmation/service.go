package confirmation

import (
	"context"
	"fmt"

	"swiftmove/models"

	"go.uber.org/zap"
)

// GetBooking fetches a booking for the result page. Repository not-found
// errors pass through so the handler can answer 404 rather than 500.
func (s *DefaultConfirmationService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return s.BookingRepo.GetByID(ctx, id)
}

// SendConfirmation triggers the confirmation delivery for a booking, at most
// once per dedup window. Repeat calls inside the window are no-ops answered
// with alreadySent.
func (s *DefaultConfirmationService) SendConfirmation(ctx context.Context, bookingID string) (*SendResult, error) {
	booking, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	acquired, err := s.Dedup.Acquire(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to check confirmation dedup: %w", err)
	}
	if !acquired {
		s.Logger.Debug("confirmation already sent inside window",
			zap.String("bookingId", bookingID))
		return &SendResult{Sent: false, AlreadySent: true}, nil
	}

	if err := s.Queue.EnqueueConfirmation(ctx, booking); err != nil {
		// Give the slot back so a retry can succeed.
		if relErr := s.Dedup.Release(ctx, bookingID); relErr != nil {
			s.Logger.Warn("failed to release dedup slot after enqueue failure",
				zap.String("bookingId", bookingID), zap.Error(relErr))
		}
		return nil, fmt.Errorf("failed to queue confirmation: %w", err)
	}

	s.Logger.Info("confirmation queued", zap.String("bookingId", bookingID))
	return &SendResult{Sent: true}, nil
}
