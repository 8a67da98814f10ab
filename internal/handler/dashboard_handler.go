package handler

import (
	"github.com/gin-gonic/gin"

	"hoa-be-svc/internal/service"
	"hoa-be-svc/pkg/logger"
	"hoa-be-svc/pkg/utils"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardService, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetCommunitySummary handles GET /api/dashboard/summary
// @Summary Get community-wide aggregate counts
// @Description Counts of residents, houses, vendors, passes, alerts and complaints, plus unpaid dues and the outstanding amount.
// @Tags dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response.CommunitySummaryResponse}
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/dashboard/summary [get]
func (h *DashboardHandler) GetCommunitySummary(c *gin.Context) {
	summary, err := h.dashboardService.GetCommunitySummary()
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to get community summary")
		return
	}

	utils.SuccessResponse(c, "Community summary retrieved successfully", summary)
}
