package handlers

import (
	"net/http"
	"time"

	"swiftmove/config"
	bookingRepo "swiftmove/database/repository/booking"
	scheduleRepo "swiftmove/database/repository/schedule"
	"swiftmove/models"
	"swiftmove/services/catalog"
	"swiftmove/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenTTL = 12 * time.Hour

// AdminHandler serves the back-office endpoints: catalog and blackout
// management plus a booking listing.
type AdminHandler struct {
	CatalogSvc   catalog.CatalogService
	ScheduleRepo scheduleRepo.ScheduleRepository
	BookingRepo  bookingRepo.BookingRepository
	Logger       *zap.Logger
}

// NewAdminHandler returns an AdminHandler.
func NewAdminHandler(catalogSvc catalog.CatalogService, scheduleRepo scheduleRepo.ScheduleRepository, bookingRepo bookingRepo.BookingRepository, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		CatalogSvc:   catalogSvc,
		ScheduleRepo: scheduleRepo,
		BookingRepo:  bookingRepo,
		Logger:       logger,
	}
}

// Login checks the admin credentials and issues a bearer token.
func (h *AdminHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if input.Email != config.AppConfig.AdminEmail ||
		bcrypt.CompareHashAndPassword([]byte(config.AppConfig.AdminPasswordHash), []byte(input.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(input.Email, "admin", adminTokenTTL)
	if err != nil {
		h.Logger.Error("failed to issue admin token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// UpsertPriceItem creates or updates a catalog item.
func (h *AdminHandler) UpsertPriceItem(c *gin.Context) {
	var item models.PriceItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if item.Name == "" || item.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item needs a name and a non-negative price"})
		return
	}
	if item.Category != models.PriceItemFurniture && item.Category != models.PriceItemAppliance {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category must be furniture or appliance"})
		return
	}

	if err := h.CatalogSvc.UpsertItem(c.Request.Context(), &item); err != nil {
		h.Logger.Error("failed to upsert price item", zap.String("name", item.Name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save price item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// DeletePriceItem removes a catalog item.
func (h *AdminHandler) DeletePriceItem(c *gin.Context) {
	id := c.Param("id")
	if err := h.CatalogSvc.DeleteItem(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Price item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CreateBlackout adds a blackout date.
func (h *AdminHandler) CreateBlackout(c *gin.Context) {
	var blackout models.BlackoutDate
	if err := c.ShouldBindJSON(&blackout); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if _, err := time.Parse("2006-01-02", blackout.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	if err := h.ScheduleRepo.CreateBlackout(c.Request.Context(), &blackout); err != nil {
		h.Logger.Error("failed to create blackout", zap.String("date", blackout.Date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save blackout date"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"blackout": blackout})
}

// DeleteBlackout removes a blackout date.
func (h *AdminHandler) DeleteBlackout(c *gin.Context) {
	date := c.Param("date")
	if err := h.ScheduleRepo.DeleteBlackout(c.Request.Context(), date); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blackout date not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListBookings returns recent bookings for the back office.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := h.BookingRepo.List(c.Request.Context(), 100)
	if err != nil {
		h.Logger.Error("failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
