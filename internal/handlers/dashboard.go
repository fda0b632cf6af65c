package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opsboard/internal/services"
)

// DashboardHandler exposes the overview stats.
type DashboardHandler struct {
	service *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetStats returns totals for tasks, clients and team members plus the
// per-status task buckets.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats()
	if err != nil {
		respondActionError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
