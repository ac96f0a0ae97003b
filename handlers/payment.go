package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"swiftmove/config"
	bookingRepo "swiftmove/database/repository/booking"
	"swiftmove/models"
	"swiftmove/services/payment"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

// PaymentHandler serves checkout session creation and the Stripe webhook.
type PaymentHandler struct {
	PaymentSvc payment.PaymentService
	Logger     *zap.Logger
}

// NewPaymentHandler returns a PaymentHandler.
func NewPaymentHandler(paymentSvc payment.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{PaymentSvc: paymentSvc, Logger: logger}
}

func (h *PaymentHandler) createSession(c *gin.Context, withHelper bool) {
	bookingID := c.Param("id")
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.PaymentSvc.CreateCheckoutSession(c.Request.Context(), bookingID, req, withHelper)
	switch {
	case errors.Is(err, payment.ErrInvalidAmount),
		errors.Is(err, payment.ErrAmountMismatch),
		errors.Is(err, payment.ErrAlreadyPaid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, bookingRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	case err != nil:
		h.Logger.Error("checkout session creation failed",
			zap.String("bookingId", bookingID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateCheckoutSession starts checkout for the standard tier.
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	h.createSession(c, false)
}

// CreateCheckoutSessionHelper starts checkout for the with-helper tier.
func (h *PaymentHandler) CreateCheckoutSessionHelper(c *gin.Context) {
	h.createSession(c, true)
}

// Webhook receives Stripe events and settles completed checkouts.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 65536))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read payload"})
		return
	}

	event, err := webhook.ConstructEvent(body, c.GetHeader("Stripe-Signature"), config.AppConfig.StripeWebhookSecret)
	if err != nil {
		h.Logger.Warn("stripe webhook signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
		return
	}

	if event.Type == "checkout.session.completed" {
		var checkoutSession stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &checkoutSession); err != nil {
			h.Logger.Error("failed to parse checkout session event", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed event"})
			return
		}
		if err := h.PaymentSvc.HandleCheckoutCompleted(c.Request.Context(), checkoutSession.ID); err != nil {
			h.Logger.Error("failed to settle checkout", zap.String("sessionId", checkoutSession.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to settle checkout"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
