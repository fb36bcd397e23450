package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inventorypro/insights/internal/analysis"
	"github.com/inventorypro/insights/internal/inventory"
)

type AnalysisHandler struct {
	coordinator *analysis.Coordinator
	service     *inventory.Service
}

func NewAnalysisHandler(coordinator *analysis.Coordinator, service *inventory.Service) *AnalysisHandler {
	return &AnalysisHandler{coordinator: coordinator, service: service}
}

// GetStockAlert returns the current alert runner state: phase, attempt and
// retry schedule when retrying, plus the last successful result if any.
func (h *AnalysisHandler) GetStockAlert(c *gin.Context) {
	c.JSON(http.StatusOK, h.coordinator.AlertState())
}

func (h *AnalysisHandler) GetInventoryHealth(c *gin.Context) {
	c.JSON(http.StatusOK, h.coordinator.HealthState())
}

// RefreshStockAlert forces a new analysis of the current out-of-stock set
// regardless of whether the set changed.
func (h *AnalysisHandler) RefreshStockAlert(c *gin.Context) {
	items, err := h.service.Items(c.Request.Context())
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	h.coordinator.RefreshAlert(items)
	c.JSON(http.StatusAccepted, h.coordinator.AlertState())
}

// RefreshInventoryHealth forces an immediate health analysis, bypassing the
// debounce window.
func (h *AnalysisHandler) RefreshInventoryHealth(c *gin.Context) {
	items, err := h.service.Items(c.Request.Context())
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	h.coordinator.RefreshHealth(items)
	c.JSON(http.StatusAccepted, h.coordinator.HealthState())
}
