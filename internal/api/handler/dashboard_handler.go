package handler

import (
	"github.com/gin-gonic/gin"

	"faculty-schedule/backend/internal/service"
	"faculty-schedule/backend/pkg/response"
)

// DashboardHandler — admin dashboard endpoint.
type DashboardHandler struct {
	dashboardSvc *service.DashboardService
}

func NewDashboardHandler(dashboardSvc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// Stats — GET /api/v1/dashboard
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardSvc.GetStats(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, stats)
}
