package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	bookingRepo "swiftmove/database/repository/booking"
	"swiftmove/models"
	"swiftmove/services/confirmation"
	"swiftmove/services/quote"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubQuoteService struct {
	booking *models.Booking
	err     error
}

func (s *stubQuoteService) StartSession(_ context.Context) (*models.QuoteSession, error) {
	return nil, errors.New("not implemented")
}

func (s *stubQuoteService) ApplyAction(_ context.Context, _ string, _ quote.Action) (*models.QuoteSession, error) {
	return nil, errors.New("not implemented")
}

func (s *stubQuoteService) CancelSession(_ context.Context, _ string) error { return nil }

func (s *stubQuoteService) CalculateQuote(_ context.Context, _ models.QuoteRequest) (*models.Booking, error) {
	return s.booking, s.err
}

func (s *stubQuoteService) QuoteSession(_ context.Context, _ string) (*models.Booking, *models.QuoteSession, error) {
	return nil, nil, errors.New("not implemented")
}

func (s *stubQuoteService) MarkCheckoutStarted(_ context.Context, _ string) error { return nil }

func (s *stubQuoteService) MarkCompleted(_ context.Context, _ string) error { return nil }

type stubConfirmationService struct {
	booking *models.Booking
	result  *confirmation.SendResult
	err     error
}

func (s *stubConfirmationService) GetBooking(_ context.Context, _ string) (*models.Booking, error) {
	if s.booking == nil {
		return nil, bookingRepo.ErrNotFound
	}
	return s.booking, nil
}

func (s *stubConfirmationService) SendConfirmation(_ context.Context, _ string) (*confirmation.SendResult, error) {
	return s.result, s.err
}

type stubContactRepo struct {
	contact *models.ContactInfo
	err     error
}

func (r *stubContactRepo) Create(_ context.Context, _ *models.Booking) error { return nil }

func (r *stubContactRepo) GetByID(_ context.Context, _ string) (*models.Booking, error) {
	return nil, bookingRepo.ErrNotFound
}

func (r *stubContactRepo) GetByCheckoutSession(_ context.Context, _ string) (*models.Booking, error) {
	return nil, bookingRepo.ErrNotFound
}

func (r *stubContactRepo) UpdatePricing(_ context.Context, _ string, _ models.PricingState, _ string) error {
	return nil
}

func (r *stubContactRepo) UpdateContact(_ context.Context, _ string, contact models.ContactInfo) error {
	if r.err != nil {
		return r.err
	}
	r.contact = &contact
	return nil
}

func (r *stubContactRepo) UpdateCheckout(_ context.Context, _ string, _ string, _ bool) error {
	return nil
}

func (r *stubContactRepo) UpdatePaymentStatus(_ context.Context, _ string, _ string) error {
	return nil
}

func (r *stubContactRepo) ListByDate(_ context.Context, _ string) ([]models.Booking, error) {
	return nil, nil
}

func (r *stubContactRepo) List(_ context.Context, _ int64) ([]models.Booking, error) {
	return nil, nil
}

func newBookingRouter(h *BookingHandler) *gin.Engine {
	r := gin.New()
	r.POST("/api/bookings", h.CreateBooking)
	r.GET("/api/bookings/:id", h.GetBooking)
	r.POST("/api/bookings/:id/contact", h.AttachContact)
	r.POST("/api/bookings/:id/send", h.SendConfirmation)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func quotePayload() map[string]any {
	return map[string]any{
		"startLocation":       "10 High St, Manchester",
		"destinationLocation": "22 King Rd, Leeds",
		"moveType":            "house",
		"date":                "2026-09-15",
		"time":                "10:00 - 12:00",
		"details": map[string]any{
			"boxes": map[string]any{"small": 2},
		},
	}
}

func TestCreateBookingReturnsExplicitPrices(t *testing.T) {
	svc := &stubQuoteService{booking: &models.Booking{
		ID:          "b-1",
		Price:       120.5,
		HelperPrice: 160.5,
		Distance:    8,
	}}
	h := NewBookingHandler(svc, &stubConfirmationService{}, &stubContactRepo{}, zap.NewNop())
	r := newBookingRouter(h)

	w := postJSON(t, r, "/api/bookings", quotePayload())
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Booking struct {
			ID          string  `json:"_id"`
			Price       float64 `json:"price"`
			HelperPrice float64 `json:"helperprice"`
			Distance    float64 `json:"distance"`
		} `json:"booking"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "b-1", resp.Booking.ID)
	assert.Equal(t, 120.5, resp.Booking.Price)
	assert.Equal(t, 160.5, resp.Booking.HelperPrice)
	assert.Equal(t, 8.0, resp.Booking.Distance)
}

func TestCreateBookingValidationErrorIs400(t *testing.T) {
	svc := &stubQuoteService{err: quote.ErrSameLocation}
	h := NewBookingHandler(svc, &stubConfirmationService{}, &stubContactRepo{}, zap.NewNop())
	r := newBookingRouter(h)

	w := postJSON(t, r, "/api/bookings", quotePayload())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), quote.ErrSameLocation.Error())
}

func TestCreateBookingBackendFailureIs500(t *testing.T) {
	svc := &stubQuoteService{err: errors.New("mongo down")}
	h := NewBookingHandler(svc, &stubConfirmationService{}, &stubContactRepo{}, zap.NewNop())
	r := newBookingRouter(h)

	w := postJSON(t, r, "/api/bookings", quotePayload())
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// Internal details never leak into the response.
	assert.NotContains(t, w.Body.String(), "mongo")
}

func TestCreateBookingMissingFieldsIs400(t *testing.T) {
	h := NewBookingHandler(&stubQuoteService{}, &stubConfirmationService{}, &stubContactRepo{}, zap.NewNop())
	r := newBookingRouter(h)

	w := postJSON(t, r, "/api/bookings", map[string]any{"startLocation": "only one end"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBookingNotFound(t *testing.T) {
	h := NewBookingHandler(&stubQuoteService{}, &stubConfirmationService{}, &stubContactRepo{}, zap.NewNop())
	r := newBookingRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAttachContactAcceptsValidDetails(t *testing.T) {
	repo := &stubContactRepo{}
	h := NewBookingHandler(&stubQuoteService{}, &stubConfirmationService{}, repo, zap.NewNop())
	r := newBookingRouter(h)

	w := postJSON(t, r, "/api/bookings/b-1/contact", map[string]any{
		"name":  "Jane Doe",
		"phone": "07404228217",
		"email": "jane@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, repo.contact)
	assert.Equal(t, "Jane Doe", repo.contact.Name)
}

func TestAttachContactRejectsBadDetailsPerField(t *testing.T) {
	h := NewBookingHandler(&stubQuoteService{}, &stubConfirmationService{}, &stubContactRepo{}, zap.NewNop())
	r := newBookingRouter(h)

	w := postJSON(t, r, "/api/bookings/b-1/contact", map[string]any{
		"name":  "J",
		"phone": "123",
		"email": "not-an-email",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "name")
	assert.Contains(t, resp.Errors, "phone")
	assert.Contains(t, resp.Errors, "email")
}

func TestSendConfirmationReportsAlreadySent(t *testing.T) {
	svc := &stubConfirmationService{result: &confirmation.SendResult{AlreadySent: true}}
	h := NewBookingHandler(&stubQuoteService{}, svc, &stubContactRepo{}, zap.NewNop())
	r := newBookingRouter(h)

	w := postJSON(t, r, "/api/bookings/b-1/send", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp confirmation.SendResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Sent)
	assert.True(t, resp.AlreadySent)
}

func TestSendConfirmationUnknownBooking(t *testing.T) {
	svc := &stubConfirmationService{err: bookingRepo.ErrNotFound}
	h := NewBookingHandler(&stubQuoteService{}, svc, &stubContactRepo{}, zap.NewNop())
	r := newBookingRouter(h)

	w := postJSON(t, r, "/api/bookings/missing/send", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
