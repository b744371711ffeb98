package handlers

import (
	"net/http"

	"md-shaving/internal/api/models"
	"md-shaving/internal/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the battery catalog.
type CatalogHandler struct {
	catalog catalog.Catalog
	source  catalog.Source
}

// NewCatalogHandler creates a catalog handler.
func NewCatalogHandler(cat catalog.Catalog, src catalog.Source) *CatalogHandler {
	return &CatalogHandler{catalog: cat, source: src}
}

// ListBatteries handles GET /api/v1/batteries. The source field lets clients
// tell external catalog data from the built-in fallback.
func (h *CatalogHandler) ListBatteries(c *gin.Context) {
	batteries := make([]models.BatteryInfo, 0, len(h.catalog))
	for _, id := range h.catalog.IDs() {
		batteries = append(batteries, models.BatteryInfo{
			ID:   id,
			Spec: h.catalog[id],
		})
	}
	c.JSON(http.StatusOK, models.BatteryListResponse{
		Source:    h.source,
		Batteries: batteries,
	})
}
