package handlers

import (
	"errors"
	"net/http"

	bookingRepo "swiftmove/database/repository/booking"
	"swiftmove/models"
	"swiftmove/services/confirmation"
	"swiftmove/services/quote"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking endpoints consumed by the quote wizard
// and the result page.
type BookingHandler struct {
	QuoteSvc        quote.QuoteService
	ConfirmationSvc confirmation.ConfirmationService
	Repo            bookingRepo.BookingRepository
	Logger          *zap.Logger
}

// NewBookingHandler returns a BookingHandler.
func NewBookingHandler(quoteSvc quote.QuoteService, confirmationSvc confirmation.ConfirmationService, repo bookingRepo.BookingRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		QuoteSvc:        quoteSvc,
		ConfirmationSvc: confirmationSvc,
		Repo:            repo,
		Logger:          logger,
	}
}

// isValidationError reports whether a quote error is the caller's fault.
func isValidationError(err error) bool {
	return errors.Is(err, quote.ErrSameLocation) ||
		errors.Is(err, quote.ErrMissingLocation) ||
		errors.Is(err, quote.ErrInvalidMoveType) ||
		errors.Is(err, quote.ErrInvalidInventory) ||
		errors.Is(err, quote.ErrDateUnavailable) ||
		errors.Is(err, quote.ErrSlotUnavailable)
}

// CreateBooking calculates a quote and persists the booking.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	booking, err := h.QuoteSvc.CalculateQuote(c.Request.Context(), req)
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("quote calculation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate quote"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// GetBooking fetches a booking by id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("id")
	booking, err := h.ConfirmationSvc.GetBooking(c.Request.Context(), id)
	if errors.Is(err, bookingRepo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	if err != nil {
		h.Logger.Error("failed to fetch booking", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// AttachContact validates and stores contact info on a booking.
func (h *BookingHandler) AttachContact(c *gin.Context) {
	id := c.Param("id")
	var contact models.ContactInfo
	if err := c.ShouldBindJSON(&contact); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if fieldErrs := contact.Validate(); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
		return
	}

	if err := h.Repo.UpdateContact(c.Request.Context(), id, contact); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		h.Logger.Error("failed to attach contact", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save contact details"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SendConfirmation triggers the idempotent confirmation send.
func (h *BookingHandler) SendConfirmation(c *gin.Context) {
	id := c.Param("id")
	result, err := h.ConfirmationSvc.SendConfirmation(c.Request.Context(), id)
	if errors.Is(err, bookingRepo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	if err != nil {
		h.Logger.Error("confirmation send failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send confirmation"})
		return
	}
	c.JSON(http.StatusOK, result)
}
