package handlers

import (
	"net/http"

	"swiftmove/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the priced item catalog.
type CatalogHandler struct {
	CatalogSvc catalog.CatalogService
	Logger     *zap.Logger
}

// NewCatalogHandler returns a CatalogHandler.
func NewCatalogHandler(catalogSvc catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{CatalogSvc: catalogSvc, Logger: logger}
}

// ListPriceItems returns the furniture/appliance catalog.
func (h *CatalogHandler) ListPriceItems(c *gin.Context) {
	items, err := h.CatalogSvc.ListItems(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list price items", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load price items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
