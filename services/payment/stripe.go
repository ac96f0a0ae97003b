package payment

import (
	"context"
	"fmt"
	"math"

	"swiftmove/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"
)

// StripeCheckoutClient calls the real Stripe Checkout API.
type StripeCheckoutClient struct{}

// NewSession creates a checkout session via the Stripe SDK.
func (StripeCheckoutClient) NewSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return session.New(params)
}

// checkoutLocale maps the site language to a Stripe checkout locale.
func checkoutLocale(language string) string {
	if language == "zh" {
		return "zh"
	}
	return "en"
}

// CreateCheckoutSession verifies the amount against the booking, creates a
// Stripe Checkout session for the chosen tier and records the session id on
// the booking. The response always has the one shape {"sessionId": ...}.
func (s *DefaultPaymentService) CreateCheckoutSession(ctx context.Context, bookingID string, req models.CheckoutRequest, withHelper bool) (*models.CheckoutSessionResponse, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	booking, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.PaymentStatus == models.PaymentStatusPaid {
		return nil, ErrAlreadyPaid
	}

	expected := booking.Price
	if withHelper {
		expected = booking.HelperPrice
	}
	if math.Abs(req.Amount-expected) > 0.01 {
		return nil, ErrAmountMismatch
	}

	name := fmt.Sprintf("%s move: %s to %s", booking.MoveType, booking.StartLocation, booking.DestinationLocation)
	if withHelper {
		name += " (with helper)"
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(string(stripe.CurrencyGBP)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(name),
				},
				UnitAmount: stripe.Int64(int64(math.Round(expected * 100))),
			},
			Quantity: stripe.Int64(1),
		}},
		SuccessURL:        stripe.String(s.SuccessURL),
		CancelURL:         stripe.String(s.CancelURL),
		Locale:            stripe.String(checkoutLocale(req.Language)),
		ClientReferenceID: stripe.String(booking.ID),
	}

	checkoutSession, err := s.Checkout.NewSession(params)
	if err != nil {
		s.Logger.Error("stripe checkout session creation failed",
			zap.String("bookingId", bookingID), zap.Error(err))
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	if err := s.BookingRepo.UpdateCheckout(ctx, bookingID, checkoutSession.ID, withHelper); err != nil {
		return nil, fmt.Errorf("failed to record checkout session: %w", err)
	}

	if s.Wizard != nil {
		s.trackWizard(ctx, booking.QuoteSessionID, s.Wizard.MarkCheckoutStarted)
	}

	s.Logger.Info("checkout session created",
		zap.String("bookingId", bookingID),
		zap.String("sessionId", checkoutSession.ID),
		zap.Bool("withHelper", withHelper))

	return &models.CheckoutSessionResponse{SessionID: checkoutSession.ID}, nil
}

// HandleCheckoutCompleted marks the booking behind a finished checkout
// session as paid.
func (s *DefaultPaymentService) HandleCheckoutCompleted(ctx context.Context, sessionID string) error {
	booking, err := s.BookingRepo.GetByCheckoutSession(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("no booking for checkout session %s: %w", sessionID, err)
	}
	if booking.PaymentStatus == models.PaymentStatusPaid {
		return nil
	}
	if err := s.BookingRepo.UpdatePaymentStatus(ctx, booking.ID, models.PaymentStatusPaid); err != nil {
		return fmt.Errorf("failed to mark booking paid: %w", err)
	}

	if s.Wizard != nil {
		s.trackWizard(ctx, booking.QuoteSessionID, s.Wizard.MarkCompleted)
	}

	s.Logger.Info("booking paid",
		zap.String("bookingId", booking.ID),
		zap.String("sessionId", sessionID))
	return nil
}

// trackWizard advances the originating wizard session. Failures only log:
// the session may have expired mid-checkout, and the payment must settle
// regardless.
func (s *DefaultPaymentService) trackWizard(ctx context.Context, sessionID string, advance func(context.Context, string) error) {
	if sessionID == "" {
		return
	}
	if err := advance(ctx, sessionID); err != nil {
		s.Logger.Debug("wizard session not advanced",
			zap.String("quoteSessionId", sessionID), zap.Error(err))
	}
}
