package handlers

import (
	"errors"
	"net/http"

	bookingRepo "swiftmove/database/repository/booking"
	"swiftmove/services/promo"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PromoHandler serves promo code application.
type PromoHandler struct {
	PromoSvc promo.PromoService
	Logger   *zap.Logger
}

// NewPromoHandler returns a PromoHandler.
func NewPromoHandler(promoSvc promo.PromoService, logger *zap.Logger) *PromoHandler {
	return &PromoHandler{PromoSvc: promoSvc, Logger: logger}
}

// ApplyPromo applies a promo code to a booking.
func (h *PromoHandler) ApplyPromo(c *gin.Context) {
	bookingID := c.Param("id")
	var input struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.PromoSvc.ApplyPromo(c.Request.Context(), bookingID, input.Code)
	switch {
	case errors.Is(err, promo.ErrInvalidCodeLength), errors.Is(err, promo.ErrInvalidCode):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	case errors.Is(err, promo.ErrTooManyAttempts):
		c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "error": err.Error()})
		return
	case errors.Is(err, promo.ErrPaymentStarted):
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
		return
	case errors.Is(err, bookingRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Booking not found"})
		return
	case err != nil:
		h.Logger.Error("promo application failed", zap.String("bookingId", bookingID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to apply promo code"})
		return
	}

	c.JSON(http.StatusOK, result)
}
