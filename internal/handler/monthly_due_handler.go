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

// MonthlyDueHandler handles monthly due HTTP requests
type MonthlyDueHandler struct {
	dueService service.MonthlyDueService
	logger     *logger.Logger
}

// NewMonthlyDueHandler creates a new monthly due handler
func NewMonthlyDueHandler(dueService service.MonthlyDueService, logger *logger.Logger) *MonthlyDueHandler {
	return &MonthlyDueHandler{
		dueService: dueService,
		logger:     logger,
	}
}

// MonthlyDueRequest represents the monthly due create/update payload.
// DueMonth accepts a plain date (2006-01-02) and is normalized to the first
// day of its month.
type MonthlyDueRequest struct {
	House    uint       `json:"house" binding:"required"`
	Resident uint       `json:"resident" binding:"required"`
	DueMonth string     `json:"due_month" binding:"required"`
	Amount   float64    `json:"amount" binding:"required"`
	IsPaid   bool       `json:"is_paid"`
	PaidAt   *time.Time `json:"paid_at"`
}

// MonthlyDueResponse represents a monthly due on the wire
type MonthlyDueResponse struct {
	ID       uint    `json:"id"`
	House    uint    `json:"house"`
	Resident uint    `json:"resident"`
	DueMonth string  `json:"due_month"`
	Amount   float64 `json:"amount"`
	IsPaid   bool    `json:"is_paid"`
	PaidAt   *string `json:"paid_at"`
}

func toMonthlyDueResponse(due *models.MonthlyDue) MonthlyDueResponse {
	resp := MonthlyDueResponse{
		ID:       due.ID,
		House:    due.HouseID,
		Resident: due.ResidentID,
		DueMonth: due.DueMonth.Format("2006-01-02"),
		Amount:   due.Amount,
		IsPaid:   due.IsPaid,
	}
	if due.PaidAt != nil {
		paidAt := due.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &paidAt
	}
	return resp
}

func (h *MonthlyDueHandler) toModel(c *gin.Context, req *MonthlyDueRequest) (*models.MonthlyDue, bool) {
	dueMonth, err := parseDate(req.DueMonth)
	if err != nil {
		utils.ValidationErrorResponse(c, "due_month", "Date must be in YYYY-MM-DD format.")
		return nil, false
	}
	return &models.MonthlyDue{
		HouseID:    req.House,
		ResidentID: req.Resident,
		DueMonth:   dueMonth,
		Amount:     req.Amount,
		IsPaid:     req.IsPaid,
		PaidAt:     req.PaidAt,
	}, true
}

// parseDate parses a date-only value, accepting a full timestamp as well
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// List handles GET /api/monthly-dues
// @Summary List the caller's monthly dues
// @Tags monthly-dues
// @Produce json
// @Success 200 {object} utils.PaginatedResponse{data=[]MonthlyDueResponse}
// @Security BearerAuth
// @Router /api/monthly-dues [get]
func (h *MonthlyDueHandler) List(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}
	page, perPage := utils.GetPagination(c)

	dues, total, err := h.dueService.List(caller.ID, page, perPage)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to list monthly dues")
		return
	}

	responses := make([]MonthlyDueResponse, 0, len(dues))
	for i := range dues {
		responses = append(responses, toMonthlyDueResponse(&dues[i]))
	}

	utils.PaginatedSuccessResponse(c, "Monthly dues retrieved successfully", responses, page, perPage, total)
}

// Get handles GET /api/monthly-dues/:id
// @Summary Retrieve one of the caller's monthly dues
// @Tags monthly-dues
// @Produce json
// @Param id path int true "Monthly due ID"
// @Success 200 {object} utils.APIResponse{data=MonthlyDueResponse}
// @Security BearerAuth
// @Router /api/monthly-dues/{id} [get]
func (h *MonthlyDueHandler) Get(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid monthly due ID", err)
		return
	}

	due, err := h.dueService.Get(caller.ID, id)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to get monthly due")
		return
	}

	utils.SuccessResponse(c, "Monthly due retrieved successfully", toMonthlyDueResponse(due))
}

// Create handles POST /api/monthly-dues
// @Summary Record a monthly due for the caller's house
// @Tags monthly-dues
// @Accept json
// @Produce json
// @Param request body MonthlyDueRequest true "Monthly due payload"
// @Success 201 {object} utils.APIResponse{data=MonthlyDueResponse}
// @Failure 400 {object} utils.APIResponse "Unknown house or malformed date"
// @Security BearerAuth
// @Router /api/monthly-dues [post]
func (h *MonthlyDueHandler) Create(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}

	var req MonthlyDueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	due, ok := h.toModel(c, &req)
	if !ok {
		return
	}
	if err := h.dueService.Create(caller.ID, due); err != nil {
		handleServiceError(c, h.logger, err, "Failed to create monthly due")
		return
	}

	utils.CreatedResponse(c, "Monthly due created successfully", toMonthlyDueResponse(due))
}

// Update handles PUT/PATCH /api/monthly-dues/:id
// @Summary Update one of the caller's monthly dues
// @Tags monthly-dues
// @Accept json
// @Produce json
// @Param id path int true "Monthly due ID"
// @Param request body MonthlyDueRequest true "Monthly due payload"
// @Success 200 {object} utils.APIResponse{data=MonthlyDueResponse}
// @Security BearerAuth
// @Router /api/monthly-dues/{id} [put]
func (h *MonthlyDueHandler) Update(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid monthly due ID", err)
		return
	}

	var req MonthlyDueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	input, ok := h.toModel(c, &req)
	if !ok {
		return
	}
	due, err := h.dueService.Update(caller.ID, id, input)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to update monthly due")
		return
	}

	utils.SuccessResponse(c, "Monthly due updated successfully", toMonthlyDueResponse(due))
}

// Delete handles DELETE /api/monthly-dues/:id
// @Summary Delete one of the caller's monthly dues
// @Tags monthly-dues
// @Produce json
// @Param id path int true "Monthly due ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/monthly-dues/{id} [delete]
func (h *MonthlyDueHandler) Delete(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid monthly due ID", err)
		return
	}

	if err := h.dueService.Delete(caller.ID, id); err != nil {
		handleServiceError(c, h.logger, err, "Failed to delete monthly due")
		return
	}

	utils.SuccessResponse(c, "Monthly due deleted successfully", nil)
}
