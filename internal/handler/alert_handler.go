package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"hoa-be-svc/internal/middleware"
	"hoa-be-svc/internal/models"
	"hoa-be-svc/internal/service"
	"hoa-be-svc/pkg/logger"
	"hoa-be-svc/pkg/utils"
)

// AlertHandler handles security alert HTTP requests
type AlertHandler struct {
	alertService service.AlertService
	logger       *logger.Logger
}

// NewAlertHandler creates a new alert handler
func NewAlertHandler(alertService service.AlertService, logger *logger.Logger) *AlertHandler {
	return &AlertHandler{
		alertService: alertService,
		logger:       logger,
	}
}

// AlertRequest represents the alert create/update payload
type AlertRequest struct {
	Resident      uint      `json:"resident" binding:"required"`
	ReportedAt    time.Time `json:"reported_at" binding:"required"`
	Reason        string    `json:"reason" binding:"required"`
	Status        string    `json:"status" binding:"required"`
	NotifiedParty string    `json:"notified_party" binding:"required"`
}

// AlertResponse represents an alert on the wire
type AlertResponse struct {
	ID            uint   `json:"id"`
	Resident      uint   `json:"resident"`
	ReportedAt    string `json:"reported_at"`
	Reason        string `json:"reason"`
	Status        string `json:"status"`
	NotifiedParty string `json:"notified_party"`
}

func toAlertResponse(alert *models.Alert) AlertResponse {
	return AlertResponse{
		ID:            alert.ID,
		Resident:      alert.ResidentID,
		ReportedAt:    alert.ReportedAt.Format(time.RFC3339),
		Reason:        alert.Reason,
		Status:        alert.Status,
		NotifiedParty: alert.NotifiedParty,
	}
}

func (h *AlertHandler) toModel(req *AlertRequest) *models.Alert {
	return &models.Alert{
		ResidentID:    req.Resident,
		ReportedAt:    req.ReportedAt,
		Reason:        req.Reason,
		Status:        req.Status,
		NotifiedParty: req.NotifiedParty,
	}
}

// List handles GET /api/alerts
// @Summary List the caller's alerts
// @Tags alerts
// @Produce json
// @Success 200 {object} utils.PaginatedResponse{data=[]AlertResponse}
// @Security BearerAuth
// @Router /api/alerts [get]
func (h *AlertHandler) List(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}
	page, perPage := utils.GetPagination(c)

	alerts, total, err := h.alertService.List(caller.ID, page, perPage)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to list alerts")
		return
	}

	responses := make([]AlertResponse, 0, len(alerts))
	for i := range alerts {
		responses = append(responses, toAlertResponse(&alerts[i]))
	}

	utils.PaginatedSuccessResponse(c, "Alerts retrieved successfully", responses, page, perPage, total)
}

// Get handles GET /api/alerts/:id
// @Summary Retrieve one of the caller's alerts
// @Tags alerts
// @Produce json
// @Param id path int true "Alert ID"
// @Success 200 {object} utils.APIResponse{data=AlertResponse}
// @Security BearerAuth
// @Router /api/alerts/{id} [get]
func (h *AlertHandler) Get(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid alert ID", err)
		return
	}

	alert, err := h.alertService.Get(caller.ID, id)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to get alert")
		return
	}

	utils.SuccessResponse(c, "Alert retrieved successfully", toAlertResponse(alert))
}

// Create handles POST /api/alerts
// @Summary Report a security alert
// @Tags alerts
// @Accept json
// @Produce json
// @Param request body AlertRequest true "Alert payload"
// @Success 201 {object} utils.APIResponse{data=AlertResponse}
// @Security BearerAuth
// @Router /api/alerts [post]
func (h *AlertHandler) Create(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}

	var req AlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	alert := h.toModel(&req)
	if err := h.alertService.Create(caller.ID, alert); err != nil {
		handleServiceError(c, h.logger, err, "Failed to create alert")
		return
	}

	utils.CreatedResponse(c, "Alert created successfully", toAlertResponse(alert))
}

// Update handles PUT/PATCH /api/alerts/:id
// @Summary Update one of the caller's alerts
// @Tags alerts
// @Accept json
// @Produce json
// @Param id path int true "Alert ID"
// @Param request body AlertRequest true "Alert payload"
// @Success 200 {object} utils.APIResponse{data=AlertResponse}
// @Security BearerAuth
// @Router /api/alerts/{id} [put]
func (h *AlertHandler) Update(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid alert ID", err)
		return
	}

	var req AlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	alert, err := h.alertService.Update(caller.ID, id, h.toModel(&req))
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to update alert")
		return
	}

	utils.SuccessResponse(c, "Alert updated successfully", toAlertResponse(alert))
}

// Delete handles DELETE /api/alerts/:id
// @Summary Delete one of the caller's alerts
// @Tags alerts
// @Produce json
// @Param id path int true "Alert ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/alerts/{id} [delete]
func (h *AlertHandler) Delete(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid alert ID", err)
		return
	}

	if err := h.alertService.Delete(caller.ID, id); err != nil {
		handleServiceError(c, h.logger, err, "Failed to delete alert")
		return
	}

	utils.SuccessResponse(c, "Alert deleted successfully", nil)
}
