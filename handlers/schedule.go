package handlers

import (
	"net/http"
	"time"

	"swiftmove/services/schedule"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler serves slot and blackout data for the scheduling step.
type ScheduleHandler struct {
	ScheduleSvc schedule.ScheduleService
	Logger      *zap.Logger
}

// NewScheduleHandler returns a ScheduleHandler.
func NewScheduleHandler(scheduleSvc schedule.ScheduleService, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{ScheduleSvc: scheduleSvc, Logger: logger}
}

// GetSlots returns the available time slots for a date.
func (h *ScheduleHandler) GetSlots(c *gin.Context) {
	date := c.Query("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	day, err := h.ScheduleSvc.AvailableSlots(c.Request.Context(), date)
	if err != nil {
		h.Logger.Error("failed to load slots", zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load available slots"})
		return
	}
	c.JSON(http.StatusOK, day)
}

// GetBlackouts returns all blackout dates.
func (h *ScheduleHandler) GetBlackouts(c *gin.Context) {
	blackouts, err := h.ScheduleSvc.Blackouts(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to load blackout dates", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load blackout dates"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"blackouts": blackouts})
}
