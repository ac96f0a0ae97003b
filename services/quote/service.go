package quote

import (
	"context"
	"fmt"
	"time"

	"swiftmove/models"

	"go.uber.org/zap"
)

// StartSession creates and stores a fresh wizard session.
func (s *DefaultQuoteService) StartSession(ctx context.Context) (*models.QuoteSession, error) {
	session := NewSession()
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store quote session: %w", err)
	}
	return session, nil
}

// ApplyAction loads the session, runs the pure transition and stores the
// result. Schedule selections are additionally checked against blackout
// dates and slot availability before the transition is accepted.
func (s *DefaultQuoteService) ApplyAction(ctx context.Context, sessionID string, action Action) (*models.QuoteSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if sched, ok := action.(SetSchedule); ok {
		available, err := s.Schedule.IsDateAvailable(ctx, sched.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to check date availability: %w", err)
		}
		if !available {
			return nil, ErrDateUnavailable
		}
		open, err := s.Schedule.IsSlotAvailable(ctx, sched.Date, sched.Time)
		if err != nil {
			return nil, fmt.Errorf("failed to check slot availability: %w", err)
		}
		if !open {
			return nil, ErrSlotUnavailable
		}
	}

	next, err := Advance(*session, action)
	if err != nil {
		return nil, err
	}
	if err := s.Sessions.Save(ctx, &next); err != nil {
		return nil, fmt.Errorf("failed to store quote session: %w", err)
	}
	return &next, nil
}

// CancelSession drops a wizard session.
func (s *DefaultQuoteService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}

// CalculateQuote validates the aggregated payload, prices it and persists a
// booking. There is no idempotency key: resubmitting after a transient
// failure creates a new booking.
func (s *DefaultQuoteService) CalculateQuote(ctx context.Context, req models.QuoteRequest) (*models.Booking, error) {
	return s.createBooking(ctx, req, "")
}

// createBooking prices a validated payload and persists the booking,
// stamping the originating wizard session id when there is one.
func (s *DefaultQuoteService) createBooking(ctx context.Context, req models.QuoteRequest, sessionID string) (*models.Booking, error) {
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	itemPrices := s.itemPrices(ctx)
	distance := s.Rates.Distance(req)
	price, helperPrice := s.Rates.Price(req, distance, itemPrices)

	booking := &models.Booking{
		StartLocation:       req.StartLocation,
		DestinationLocation: req.DestinationLocation,
		MoveType:            req.MoveType,
		Date:                req.Date,
		Time:                req.Time,
		Details:             req.Details,
		Distance:            distance,
		Price:               price,
		HelperPrice:         helperPrice,
		OriginalPrice:       price,
		OriginalHelperPrice: helperPrice,
		PaymentStatus:       models.PaymentStatusUnpaid,
		QuoteSessionID:      sessionID,
	}
	if err := s.BookingRepo.Create(ctx, booking); err != nil {
		s.Logger.Error("failed to persist booking", zap.Error(err))
		return nil, fmt.Errorf("failed to calculate quote: %w", err)
	}

	s.Logger.Info("quote calculated",
		zap.String("bookingId", booking.ID),
		zap.String("moveType", string(booking.MoveType)),
		zap.Float64("price", booking.Price),
		zap.Float64("distance", booking.Distance))
	return booking, nil
}

// QuoteSession prices a session whose schedule step is complete, persists
// the booking and advances the wizard to the quoted stage.
func (s *DefaultQuoteService) QuoteSession(ctx context.Context, sessionID string) (*models.Booking, *models.QuoteSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if session.Stage != models.StageSchedule || session.Date == "" || session.Time == "" || session.Details == nil {
		return nil, nil, ErrInvalidStage
	}

	req := models.QuoteRequest{
		StartLocation:       session.StartLocation,
		DestinationLocation: session.DestinationLocation,
		StartLat:            session.StartLat,
		StartLng:            session.StartLng,
		DestinationLat:      session.DestinationLat,
		DestinationLng:      session.DestinationLng,
		MoveType:            session.MoveType,
		Details:             *session.Details,
		Date:                session.Date,
		Time:                session.Time,
	}
	booking, err := s.createBooking(ctx, req, session.ID)
	if err != nil {
		return nil, nil, err
	}

	next, err := Advance(*session, QuotePriced{BookingID: booking.ID})
	if err != nil {
		return nil, nil, err
	}
	if err := s.Sessions.Save(ctx, &next); err != nil {
		return nil, nil, fmt.Errorf("failed to store quote session: %w", err)
	}
	return booking, &next, nil
}

// MarkCheckoutStarted advances a wizard session to the paying stage when its
// booking enters checkout.
func (s *DefaultQuoteService) MarkCheckoutStarted(ctx context.Context, sessionID string) error {
	_, err := s.ApplyAction(ctx, sessionID, CheckoutStarted{})
	return err
}

// MarkCompleted finishes a wizard session once its booking is paid.
func (s *DefaultQuoteService) MarkCompleted(ctx context.Context, sessionID string) error {
	_, err := s.ApplyAction(ctx, sessionID, Completed{})
	return err
}

func (s *DefaultQuoteService) validate(ctx context.Context, req models.QuoteRequest) error {
	if req.StartLocation == "" || req.DestinationLocation == "" {
		return ErrMissingLocation
	}
	if SameLocation(req.StartLocation, req.DestinationLocation) {
		return ErrSameLocation
	}
	if !req.MoveType.Valid() {
		return ErrInvalidMoveType
	}
	if !req.Details.Valid() {
		return ErrInvalidInventory
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return fmt.Errorf("invalid date %q: %w", req.Date, err)
	}
	available, err := s.Schedule.IsDateAvailable(ctx, req.Date)
	if err != nil {
		return fmt.Errorf("failed to check date availability: %w", err)
	}
	if !available {
		return ErrDateUnavailable
	}
	open, err := s.Schedule.IsSlotAvailable(ctx, req.Date, req.Time)
	if err != nil {
		return fmt.Errorf("failed to check slot availability: %w", err)
	}
	if !open {
		return ErrSlotUnavailable
	}
	return nil
}

// itemPrices loads catalog prices. A catalog failure degrades to the rate
// card's fallback per-item price instead of failing the quote.
func (s *DefaultQuoteService) itemPrices(ctx context.Context) map[string]float64 {
	items, err := s.CatalogRepo.List(ctx)
	if err != nil {
		s.Logger.Warn("catalog unavailable, using fallback item prices", zap.Error(err))
		return map[string]float64{}
	}
	prices := make(map[string]float64, len(items))
	for _, item := range items {
		prices[item.Name] = item.Price
	}
	return prices
}
