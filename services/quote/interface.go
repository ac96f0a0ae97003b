package quote

import (
	"context"

	bookingRepo "swiftmove/database/repository/booking"
	catalogRepo "swiftmove/database/repository/catalog"
	"swiftmove/models"

	"go.uber.org/zap"
)

// ScheduleChecker is the slice of the schedule service the quote flow needs.
type ScheduleChecker interface {
	IsDateAvailable(ctx context.Context, date string) (bool, error)
	IsSlotAvailable(ctx context.Context, date, slot string) (bool, error)
}

// QuoteService drives the quote wizard and turns a completed wizard (or a
// direct payload) into a persisted, priced booking.
type QuoteService interface {
	StartSession(ctx context.Context) (*models.QuoteSession, error)
	ApplyAction(ctx context.Context, sessionID string, action Action) (*models.QuoteSession, error)
	CancelSession(ctx context.Context, sessionID string) error
	CalculateQuote(ctx context.Context, req models.QuoteRequest) (*models.Booking, error)
	QuoteSession(ctx context.Context, sessionID string) (*models.Booking, *models.QuoteSession, error)
	MarkCheckoutStarted(ctx context.Context, sessionID string) error
	MarkCompleted(ctx context.Context, sessionID string) error
}

// DefaultQuoteService implements QuoteService.
type DefaultQuoteService struct {
	BookingRepo bookingRepo.BookingRepository
	CatalogRepo catalogRepo.CatalogRepository
	Schedule    ScheduleChecker
	Sessions    SessionStore
	Rates       RateCard
	Logger      *zap.Logger
}
