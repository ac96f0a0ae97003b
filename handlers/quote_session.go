package handlers

import (
	"errors"
	"net/http"

	"swiftmove/models"
	"swiftmove/services/quote"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuoteSessionHandler drives the server-held quote wizard.
type QuoteSessionHandler struct {
	QuoteSvc quote.QuoteService
	Logger   *zap.Logger
}

// NewQuoteSessionHandler returns a QuoteSessionHandler.
func NewQuoteSessionHandler(quoteSvc quote.QuoteService, logger *zap.Logger) *QuoteSessionHandler {
	return &QuoteSessionHandler{QuoteSvc: quoteSvc, Logger: logger}
}

// sessionStepInput is the update payload: one wizard step per request.
type sessionStepInput struct {
	Step string `json:"step" binding:"required"` // "location" | "inventory" | "schedule"

	// location step
	StartLocation       string          `json:"startLocation"`
	DestinationLocation string          `json:"destinationLocation"`
	MoveType            models.MoveType `json:"moveType"`
	StartLat            *float64        `json:"startLat"`
	StartLng            *float64        `json:"startLng"`
	DestinationLat      *float64        `json:"destinationLat"`
	DestinationLng      *float64        `json:"destinationLng"`

	// inventory step
	Details *models.InventoryDetails `json:"details"`

	// schedule step
	Date string `json:"date"`
	Time string `json:"time"`
}

func (in sessionStepInput) action() (quote.Action, bool) {
	switch in.Step {
	case "location":
		return quote.SetLocations{
			Start:          in.StartLocation,
			Destination:    in.DestinationLocation,
			MoveType:       in.MoveType,
			StartLat:       in.StartLat,
			StartLng:       in.StartLng,
			DestinationLat: in.DestinationLat,
			DestinationLng: in.DestinationLng,
		}, true
	case "inventory":
		if in.Details == nil {
			return nil, false
		}
		return quote.SetInventory{Details: *in.Details}, true
	case "schedule":
		return quote.SetSchedule{Date: in.Date, Time: in.Time}, true
	}
	return nil, false
}

// StartSession creates a new quote wizard session.
func (h *QuoteSessionHandler) StartSession(c *gin.Context) {
	session, err := h.QuoteSvc.StartSession(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to start quote session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start quote session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// UpdateSession applies one wizard step to the session.
func (h *QuoteSessionHandler) UpdateSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input sessionStepInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	action, ok := input.action()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown or incomplete step"})
		return
	}

	session, err := h.QuoteSvc.ApplyAction(c.Request.Context(), sessionID, action)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// QuoteSession prices a completed wizard and returns the persisted booking.
func (h *QuoteSessionHandler) QuoteSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	booking, session, err := h.QuoteSvc.QuoteSession(c.Request.Context(), sessionID)
	if err != nil {
		if isValidationError(err) || errors.Is(err, quote.ErrInvalidStage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, quote.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quote session not found or expired"})
			return
		}
		h.Logger.Error("failed to quote session", zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate quote"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking, "session": session})
}

// CancelSession drops the wizard session.
func (h *QuoteSessionHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.QuoteSvc.CancelSession(c.Request.Context(), sessionID); err != nil {
		h.Logger.Error("failed to cancel quote session", zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel quote session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *QuoteSessionHandler) respondSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, quote.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Quote session not found or expired"})
	case isValidationError(err), errors.Is(err, quote.ErrInvalidStage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.Logger.Error("quote session update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update quote session"})
	}
}
