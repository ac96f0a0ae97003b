package payment

import (
	"context"

	bookingRepo "swiftmove/database/repository/booking"
	"swiftmove/models"

	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

// CheckoutClient abstracts Stripe Checkout session creation.
type CheckoutClient interface {
	NewSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// WizardTracker advances the quote wizard session tied to a booking as the
// payment progresses. Tracking is best effort: the session may have expired.
type WizardTracker interface {
	MarkCheckoutStarted(ctx context.Context, sessionID string) error
	MarkCompleted(ctx context.Context, sessionID string) error
}

// PaymentService creates checkout sessions and settles their outcomes.
type PaymentService interface {
	CreateCheckoutSession(ctx context.Context, bookingID string, req models.CheckoutRequest, withHelper bool) (*models.CheckoutSessionResponse, error)
	HandleCheckoutCompleted(ctx context.Context, sessionID string) error
}

// DefaultPaymentService implements PaymentService on Stripe Checkout.
type DefaultPaymentService struct {
	BookingRepo bookingRepo.BookingRepository
	Checkout    CheckoutClient
	Wizard      WizardTracker
	SuccessURL  string
	CancelURL   string
	Logger      *zap.Logger
}
