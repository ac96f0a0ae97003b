package payment

import (
	"context"
	"errors"
	"testing"

	bookingRepo "swiftmove/database/repository/booking"
	"swiftmove/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

type fakeCheckout struct {
	lastParams *stripe.CheckoutSessionParams
	err        error
}

func (f *fakeCheckout) NewSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastParams = params
	return &stripe.CheckoutSession{ID: "cs_test_123"}, nil
}

type memBookings struct {
	bookings map[string]*models.Booking
}

func newMemBookings(bookings ...*models.Booking) *memBookings {
	m := &memBookings{bookings: make(map[string]*models.Booking)}
	for _, b := range bookings {
		m.bookings[b.ID] = b
	}
	return m
}

func (m *memBookings) Create(_ context.Context, _ *models.Booking) error { return nil }

func (m *memBookings) GetByID(_ context.Context, id string) (*models.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (m *memBookings) GetByCheckoutSession(_ context.Context, sessionID string) (*models.Booking, error) {
	for _, b := range m.bookings {
		if b.CheckoutSessionID == sessionID {
			copied := *b
			return &copied, nil
		}
	}
	return nil, bookingRepo.ErrNotFound
}

func (m *memBookings) UpdatePricing(_ context.Context, _ string, _ models.PricingState, _ string) error {
	return nil
}

func (m *memBookings) UpdateContact(_ context.Context, _ string, _ models.ContactInfo) error {
	return nil
}

func (m *memBookings) UpdateCheckout(_ context.Context, id string, sessionID string, withHelper bool) error {
	b, ok := m.bookings[id]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	b.CheckoutSessionID = sessionID
	b.WithHelper = withHelper
	b.PaymentStatus = models.PaymentStatusPending
	return nil
}

func (m *memBookings) UpdatePaymentStatus(_ context.Context, id string, status string) error {
	b, ok := m.bookings[id]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	b.PaymentStatus = status
	return nil
}

func (m *memBookings) ListByDate(_ context.Context, _ string) ([]models.Booking, error) {
	return nil, nil
}

func (m *memBookings) List(_ context.Context, _ int64) ([]models.Booking, error) { return nil, nil }

func unpaidBooking() *models.Booking {
	return &models.Booking{
		ID:                  "b-1",
		StartLocation:       "Manchester",
		DestinationLocation: "Leeds",
		MoveType:            models.MoveTypeHouse,
		Price:               120.5,
		HelperPrice:         160.5,
		PaymentStatus:       models.PaymentStatusUnpaid,
	}
}

func newPaymentService(repo *memBookings, checkout CheckoutClient) *DefaultPaymentService {
	return &DefaultPaymentService{
		BookingRepo: repo,
		Checkout:    checkout,
		SuccessURL:  "https://example.com/confirmation",
		CancelURL:   "https://example.com/payment",
		Logger:      zap.NewNop(),
	}
}

func TestCreateCheckoutSession(t *testing.T) {
	repo := newMemBookings(unpaidBooking())
	checkout := &fakeCheckout{}
	svc := newPaymentService(repo, checkout)

	resp, err := svc.CreateCheckoutSession(context.Background(), "b-1",
		models.CheckoutRequest{Amount: 120.5, Language: "en"}, false)
	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", resp.SessionID)

	b := repo.bookings["b-1"]
	assert.Equal(t, "cs_test_123", b.CheckoutSessionID)
	assert.False(t, b.WithHelper)
	assert.Equal(t, models.PaymentStatusPending, b.PaymentStatus)

	require.NotNil(t, checkout.lastParams)
	require.Len(t, checkout.lastParams.LineItems, 1)
	assert.Equal(t, int64(12050), *checkout.lastParams.LineItems[0].PriceData.UnitAmount)
	assert.Equal(t, "en", *checkout.lastParams.Locale)
	assert.Equal(t, "b-1", *checkout.lastParams.ClientReferenceID)
}

func TestCreateCheckoutSessionHelperTier(t *testing.T) {
	repo := newMemBookings(unpaidBooking())
	checkout := &fakeCheckout{}
	svc := newPaymentService(repo, checkout)

	resp, err := svc.CreateCheckoutSession(context.Background(), "b-1",
		models.CheckoutRequest{Amount: 160.5, Language: "zh"}, true)
	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", resp.SessionID)
	assert.True(t, repo.bookings["b-1"].WithHelper)
	assert.Equal(t, int64(16050), *checkout.lastParams.LineItems[0].PriceData.UnitAmount)
	assert.Equal(t, "zh", *checkout.lastParams.Locale)
}

func TestCreateCheckoutSessionAmountMismatch(t *testing.T) {
	svc := newPaymentService(newMemBookings(unpaidBooking()), &fakeCheckout{})

	// Base amount against the helper tier and vice versa both fail.
	_, err := svc.CreateCheckoutSession(context.Background(), "b-1",
		models.CheckoutRequest{Amount: 120.5}, true)
	assert.ErrorIs(t, err, ErrAmountMismatch)

	_, err = svc.CreateCheckoutSession(context.Background(), "b-1",
		models.CheckoutRequest{Amount: 160.5}, false)
	assert.ErrorIs(t, err, ErrAmountMismatch)
}

func TestCreateCheckoutSessionToleratesPennyRounding(t *testing.T) {
	svc := newPaymentService(newMemBookings(unpaidBooking()), &fakeCheckout{})

	_, err := svc.CreateCheckoutSession(context.Background(), "b-1",
		models.CheckoutRequest{Amount: 120.505}, false)
	assert.NoError(t, err)
}

func TestCreateCheckoutSessionInvalidAmount(t *testing.T) {
	svc := newPaymentService(newMemBookings(unpaidBooking()), &fakeCheckout{})

	_, err := svc.CreateCheckoutSession(context.Background(), "b-1",
		models.CheckoutRequest{Amount: 0}, false)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.CreateCheckoutSession(context.Background(), "b-1",
		models.CheckoutRequest{Amount: -5}, false)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestCreateCheckoutSessionAlreadyPaid(t *testing.T) {
	paid := unpaidBooking()
	paid.PaymentStatus = models.PaymentStatusPaid
	svc := newPaymentService(newMemBookings(paid), &fakeCheckout{})

	_, err := svc.CreateCheckoutSession(context.Background(), "b-1",
		models.CheckoutRequest{Amount: 120.5}, false)
	assert.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestCreateCheckoutSessionUnknownBooking(t *testing.T) {
	svc := newPaymentService(newMemBookings(), &fakeCheckout{})

	_, err := svc.CreateCheckoutSession(context.Background(), "missing",
		models.CheckoutRequest{Amount: 120.5}, false)
	assert.ErrorIs(t, err, bookingRepo.ErrNotFound)
}

func TestCreateCheckoutSessionStripeFailure(t *testing.T) {
	repo := newMemBookings(unpaidBooking())
	svc := newPaymentService(repo, &fakeCheckout{err: errors.New("stripe down")})

	_, err := svc.CreateCheckoutSession(context.Background(), "b-1",
		models.CheckoutRequest{Amount: 120.5}, false)
	require.Error(t, err)
	assert.Empty(t, repo.bookings["b-1"].CheckoutSessionID)
}

func TestHandleCheckoutCompleted(t *testing.T) {
	pending := unpaidBooking()
	pending.CheckoutSessionID = "cs_test_123"
	pending.PaymentStatus = models.PaymentStatusPending
	repo := newMemBookings(pending)
	svc := newPaymentService(repo, &fakeCheckout{})

	require.NoError(t, svc.HandleCheckoutCompleted(context.Background(), "cs_test_123"))
	assert.Equal(t, models.PaymentStatusPaid, repo.bookings["b-1"].PaymentStatus)

	// Replayed webhook events are idempotent.
	require.NoError(t, svc.HandleCheckoutCompleted(context.Background(), "cs_test_123"))
	assert.Equal(t, models.PaymentStatusPaid, repo.bookings["b-1"].PaymentStatus)
}

func TestHandleCheckoutCompletedUnknownSession(t *testing.T) {
	svc := newPaymentService(newMemBookings(), &fakeCheckout{})

	err := svc.HandleCheckoutCompleted(context.Background(), "cs_unknown")
	assert.Error(t, err)
}

type fakeWizard struct {
	started   []string
	completed []string
	err       error
}

func (f *fakeWizard) MarkCheckoutStarted(_ context.Context, sessionID string) error {
	if f.err != nil {
		return f.err
	}
	f.started = append(f.started, sessionID)
	return nil
}

func (f *fakeWizard) MarkCompleted(_ context.Context, sessionID string) error {
	if f.err != nil {
		return f.err
	}
	f.completed = append(f.completed, sessionID)
	return nil
}

func wizardBooking() *models.Booking {
	b := unpaidBooking()
	b.QuoteSessionID = "qs-1"
	return b
}

func TestCreateCheckoutSessionAdvancesWizard(t *testing.T) {
	repo := newMemBookings(wizardBooking())
	wizard := &fakeWizard{}
	svc := newPaymentService(repo, &fakeCheckout{})
	svc.Wizard = wizard

	_, err := svc.CreateCheckoutSession(context.Background(), "b-1",
		models.CheckoutRequest{Amount: 120.5}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"qs-1"}, wizard.started)
	assert.Empty(t, wizard.completed)
}

func TestHandleCheckoutCompletedFinishesWizard(t *testing.T) {
	pending := wizardBooking()
	pending.CheckoutSessionID = "cs_test_123"
	pending.PaymentStatus = models.PaymentStatusPending
	repo := newMemBookings(pending)
	wizard := &fakeWizard{}
	svc := newPaymentService(repo, &fakeCheckout{})
	svc.Wizard = wizard

	require.NoError(t, svc.HandleCheckoutCompleted(context.Background(), "cs_test_123"))
	assert.Equal(t, []string{"qs-1"}, wizard.completed)
}

func TestWizardTrackingIsBestEffort(t *testing.T) {
	repo := newMemBookings(wizardBooking())
	svc := newPaymentService(repo, &fakeCheckout{})
	svc.Wizard = &fakeWizard{err: errors.New("session expired")}

	// A dead wizard session never blocks the payment.
	resp, err := svc.CreateCheckoutSession(context.Background(), "b-1",
		models.CheckoutRequest{Amount: 120.5}, false)
	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", resp.SessionID)
}

func TestWizardTrackingSkipsDirectBookings(t *testing.T) {
	// Bookings created outside the wizard carry no session id.
	repo := newMemBookings(unpaidBooking())
	wizard := &fakeWizard{}
	svc := newPaymentService(repo, &fakeCheckout{})
	svc.Wizard = wizard

	_, err := svc.CreateCheckoutSession(context.Background(), "b-1",
		models.CheckoutRequest{Amount: 120.5}, false)
	require.NoError(t, err)
	assert.Empty(t, wizard.started)
}

func TestCheckoutLocale(t *testing.T) {
	assert.Equal(t, "zh", checkoutLocale("zh"))
	assert.Equal(t, "en", checkoutLocale("en"))
	assert.Equal(t, "en", checkoutLocale(""))
	assert.Equal(t, "en", checkoutLocale("fr"))
}
