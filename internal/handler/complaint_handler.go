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

// ComplaintHandler handles complaint HTTP requests
type ComplaintHandler struct {
	complaintService service.ComplaintService
	logger           *logger.Logger
}

// NewComplaintHandler creates a new complaint handler
func NewComplaintHandler(complaintService service.ComplaintService, logger *logger.Logger) *ComplaintHandler {
	return &ComplaintHandler{
		complaintService: complaintService,
		logger:           logger,
	}
}

// ComplaintRequest represents the complaint create/update payload
type ComplaintRequest struct {
	Resident      uint      `json:"resident" binding:"required"`
	ComplaintType string    `json:"complaint_type" binding:"required"`
	ComplainedAt  time.Time `json:"complained_at" binding:"required"`
	ServiceType   string    `json:"service_type"`
	TriggerType   string    `json:"trigger_type"`
	Status        string    `json:"status" binding:"required"`
	Remarks       string    `json:"remarks"`
}

// ComplaintResponse represents a complaint on the wire
type ComplaintResponse struct {
	ID            uint   `json:"id"`
	Resident      uint   `json:"resident"`
	ComplaintType string `json:"complaint_type"`
	ComplainedAt  string `json:"complained_at"`
	ServiceType   string `json:"service_type"`
	TriggerType   string `json:"trigger_type"`
	Status        string `json:"status"`
	Remarks       string `json:"remarks"`
}

func toComplaintResponse(complaint *models.Complaint) ComplaintResponse {
	return ComplaintResponse{
		ID:            complaint.ID,
		Resident:      complaint.ResidentID,
		ComplaintType: complaint.ComplaintType,
		ComplainedAt:  complaint.ComplainedAt.Format(time.RFC3339),
		ServiceType:   complaint.ServiceType,
		TriggerType:   complaint.TriggerType,
		Status:        complaint.Status,
		Remarks:       complaint.Remarks,
	}
}

func (h *ComplaintHandler) toModel(req *ComplaintRequest) *models.Complaint {
	return &models.Complaint{
		ResidentID:    req.Resident,
		ComplaintType: req.ComplaintType,
		ComplainedAt:  req.ComplainedAt,
		ServiceType:   req.ServiceType,
		TriggerType:   req.TriggerType,
		Status:        req.Status,
		Remarks:       req.Remarks,
	}
}

// List handles GET /api/complaints
// @Summary List the caller's complaints
// @Tags complaints
// @Produce json
// @Success 200 {object} utils.PaginatedResponse{data=[]ComplaintResponse}
// @Security BearerAuth
// @Router /api/complaints [get]
func (h *ComplaintHandler) List(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}
	page, perPage := utils.GetPagination(c)

	complaints, total, err := h.complaintService.List(caller.ID, page, perPage)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to list complaints")
		return
	}

	responses := make([]ComplaintResponse, 0, len(complaints))
	for i := range complaints {
		responses = append(responses, toComplaintResponse(&complaints[i]))
	}

	utils.PaginatedSuccessResponse(c, "Complaints retrieved successfully", responses, page, perPage, total)
}

// Get handles GET /api/complaints/:id
// @Summary Retrieve one of the caller's complaints
// @Tags complaints
// @Produce json
// @Param id path int true "Complaint ID"
// @Success 200 {object} utils.APIResponse{data=ComplaintResponse}
// @Security BearerAuth
// @Router /api/complaints/{id} [get]
func (h *ComplaintHandler) Get(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid complaint ID", err)
		return
	}

	complaint, err := h.complaintService.Get(caller.ID, id)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to get complaint")
		return
	}

	utils.SuccessResponse(c, "Complaint retrieved successfully", toComplaintResponse(complaint))
}

// Create handles POST /api/complaints
// @Summary File a complaint; complaint_type must be general or service
// @Tags complaints
// @Accept json
// @Produce json
// @Param request body ComplaintRequest true "Complaint payload"
// @Success 201 {object} utils.APIResponse{data=ComplaintResponse}
// @Failure 400 {object} utils.APIResponse "Invalid complaint type"
// @Security BearerAuth
// @Router /api/complaints [post]
func (h *ComplaintHandler) Create(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}

	var req ComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	complaint := h.toModel(&req)
	if err := h.complaintService.Create(caller.ID, complaint); err != nil {
		handleServiceError(c, h.logger, err, "Failed to create complaint")
		return
	}

	utils.CreatedResponse(c, "Complaint filed successfully", toComplaintResponse(complaint))
}

// Update handles PUT/PATCH /api/complaints/:id
// @Summary Update one of the caller's complaints
// @Tags complaints
// @Accept json
// @Produce json
// @Param id path int true "Complaint ID"
// @Param request body ComplaintRequest true "Complaint payload"
// @Success 200 {object} utils.APIResponse{data=ComplaintResponse}
// @Security BearerAuth
// @Router /api/complaints/{id} [put]
func (h *ComplaintHandler) Update(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid complaint ID", err)
		return
	}

	var req ComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	complaint, err := h.complaintService.Update(caller.ID, id, h.toModel(&req))
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to update complaint")
		return
	}

	utils.SuccessResponse(c, "Complaint updated successfully", toComplaintResponse(complaint))
}

// Delete handles DELETE /api/complaints/:id
// @Summary Delete one of the caller's complaints
// @Tags complaints
// @Produce json
// @Param id path int true "Complaint ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/complaints/{id} [delete]
func (h *ComplaintHandler) Delete(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid complaint ID", err)
		return
	}

	if err := h.complaintService.Delete(caller.ID, id); err != nil {
		handleServiceError(c, h.logger, err, "Failed to delete complaint")
		return
	}

	utils.SuccessResponse(c, "Complaint deleted successfully", nil)
}
