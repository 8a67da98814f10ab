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

// CCTVRequestHandler handles CCTV footage request HTTP requests
type CCTVRequestHandler struct {
	requestService service.CCTVRequestService
	logger         *logger.Logger
}

// NewCCTVRequestHandler creates a new CCTV request handler
func NewCCTVRequestHandler(requestService service.CCTVRequestService, logger *logger.Logger) *CCTVRequestHandler {
	return &CCTVRequestHandler{
		requestService: requestService,
		logger:         logger,
	}
}

// CCTVRequestRequest represents the CCTV request create/update payload
type CCTVRequestRequest struct {
	Resident      uint      `json:"resident" binding:"required"`
	RequestedAt   time.Time `json:"requested_at" binding:"required"`
	Reason        string    `json:"reason" binding:"required"`
	Status        string    `json:"status" binding:"required"`
	NotifiedParty string    `json:"notified_party" binding:"required"`
}

// CCTVRequestResponse represents a CCTV request on the wire
type CCTVRequestResponse struct {
	ID            uint   `json:"id"`
	Resident      uint   `json:"resident"`
	RequestedAt   string `json:"requested_at"`
	Reason        string `json:"reason"`
	Status        string `json:"status"`
	NotifiedParty string `json:"notified_party"`
}

func toCCTVRequestResponse(request *models.CCTVRequest) CCTVRequestResponse {
	return CCTVRequestResponse{
		ID:            request.ID,
		Resident:      request.ResidentID,
		RequestedAt:   request.RequestedAt.Format(time.RFC3339),
		Reason:        request.Reason,
		Status:        request.Status,
		NotifiedParty: request.NotifiedParty,
	}
}

func (h *CCTVRequestHandler) toModel(req *CCTVRequestRequest) *models.CCTVRequest {
	return &models.CCTVRequest{
		ResidentID:    req.Resident,
		RequestedAt:   req.RequestedAt,
		Reason:        req.Reason,
		Status:        req.Status,
		NotifiedParty: req.NotifiedParty,
	}
}

// List handles GET /api/cctv-requests
// @Summary List the caller's CCTV requests
// @Tags cctv-requests
// @Produce json
// @Success 200 {object} utils.PaginatedResponse{data=[]CCTVRequestResponse}
// @Security BearerAuth
// @Router /api/cctv-requests [get]
func (h *CCTVRequestHandler) List(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}
	page, perPage := utils.GetPagination(c)

	requests, total, err := h.requestService.List(caller.ID, page, perPage)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to list CCTV requests")
		return
	}

	responses := make([]CCTVRequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, toCCTVRequestResponse(&requests[i]))
	}

	utils.PaginatedSuccessResponse(c, "CCTV requests retrieved successfully", responses, page, perPage, total)
}

// Get handles GET /api/cctv-requests/:id
// @Summary Retrieve one of the caller's CCTV requests
// @Tags cctv-requests
// @Produce json
// @Param id path int true "CCTV request ID"
// @Success 200 {object} utils.APIResponse{data=CCTVRequestResponse}
// @Security BearerAuth
// @Router /api/cctv-requests/{id} [get]
func (h *CCTVRequestHandler) Get(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid CCTV request ID", err)
		return
	}

	request, err := h.requestService.Get(caller.ID, id)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to get CCTV request")
		return
	}

	utils.SuccessResponse(c, "CCTV request retrieved successfully", toCCTVRequestResponse(request))
}

// Create handles POST /api/cctv-requests
// @Summary File a CCTV footage request
// @Tags cctv-requests
// @Accept json
// @Produce json
// @Param request body CCTVRequestRequest true "CCTV request payload"
// @Success 201 {object} utils.APIResponse{data=CCTVRequestResponse}
// @Security BearerAuth
// @Router /api/cctv-requests [post]
func (h *CCTVRequestHandler) Create(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}

	var req CCTVRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	request := h.toModel(&req)
	if err := h.requestService.Create(caller.ID, request); err != nil {
		handleServiceError(c, h.logger, err, "Failed to create CCTV request")
		return
	}

	utils.CreatedResponse(c, "CCTV request created successfully", toCCTVRequestResponse(request))
}

// Update handles PUT/PATCH /api/cctv-requests/:id
// @Summary Update one of the caller's CCTV requests
// @Tags cctv-requests
// @Accept json
// @Produce json
// @Param id path int true "CCTV request ID"
// @Param request body CCTVRequestRequest true "CCTV request payload"
// @Success 200 {object} utils.APIResponse{data=CCTVRequestResponse}
// @Security BearerAuth
// @Router /api/cctv-requests/{id} [put]
func (h *CCTVRequestHandler) Update(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid CCTV request ID", err)
		return
	}

	var req CCTVRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	request, err := h.requestService.Update(caller.ID, id, h.toModel(&req))
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to update CCTV request")
		return
	}

	utils.SuccessResponse(c, "CCTV request updated successfully", toCCTVRequestResponse(request))
}

// Delete handles DELETE /api/cctv-requests/:id
// @Summary Delete one of the caller's CCTV requests
// @Tags cctv-requests
// @Produce json
// @Param id path int true "CCTV request ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/cctv-requests/{id} [delete]
func (h *CCTVRequestHandler) Delete(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid CCTV request ID", err)
		return
	}

	if err := h.requestService.Delete(caller.ID, id); err != nil {
		handleServiceError(c, h.logger, err, "Failed to delete CCTV request")
		return
	}

	utils.SuccessResponse(c, "CCTV request deleted successfully", nil)
}
