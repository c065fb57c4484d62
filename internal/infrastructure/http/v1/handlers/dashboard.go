package handlers

import (
	"github.com/gin-gonic/gin"

	"stockpilot/internal/domain/reports"
)

// DashboardHandler provides the aggregated dashboard endpoint.
type DashboardHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(base *BaseHandler, service *reports.Service) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Get handles GET /dashboard - counts, stock totals, low-stock listing.
func (h *DashboardHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	filter := reports.DashboardFilter{
		LowStockLimit: h.ParseIntQuery(c, "lowStockLimit", 5),
	}

	metrics, err := h.service.GetDashboard(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, metrics)
}
