package handler

import (
	"github.com/gin-gonic/gin"

	"hoa-be-svc/internal/middleware"
	"hoa-be-svc/internal/models"
	"hoa-be-svc/internal/service"
	"hoa-be-svc/pkg/logger"
	"hoa-be-svc/pkg/utils"
)

// VendorHandler handles vendor-related HTTP requests
type VendorHandler struct {
	vendorService service.VendorService
	logger        *logger.Logger
}

// NewVendorHandler creates a new vendor handler
func NewVendorHandler(vendorService service.VendorService, logger *logger.Logger) *VendorHandler {
	return &VendorHandler{
		vendorService: vendorService,
		logger:        logger,
	}
}

// VendorRequest represents the vendor create/update payload
type VendorRequest struct {
	Resident     uint   `json:"resident" binding:"required"`
	BusinessName string `json:"business_name" binding:"required"`
}

// VendorResponse represents a vendor on the wire
type VendorResponse struct {
	ID           uint   `json:"id"`
	Resident     uint   `json:"resident"`
	BusinessName string `json:"business_name"`
}

func toVendorResponse(vendor *models.Vendor) VendorResponse {
	return VendorResponse{
		ID:           vendor.ID,
		Resident:     vendor.ResidentID,
		BusinessName: vendor.BusinessName,
	}
}

// List handles GET /api/vendors
// @Summary List the caller's vendors
// @Tags vendors
// @Produce json
// @Success 200 {object} utils.PaginatedResponse{data=[]VendorResponse}
// @Security BearerAuth
// @Router /api/vendors [get]
func (h *VendorHandler) List(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}
	page, perPage := utils.GetPagination(c)

	vendors, total, err := h.vendorService.List(caller.ID, page, perPage)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to list vendors")
		return
	}

	responses := make([]VendorResponse, 0, len(vendors))
	for i := range vendors {
		responses = append(responses, toVendorResponse(&vendors[i]))
	}

	utils.PaginatedSuccessResponse(c, "Vendors retrieved successfully", responses, page, perPage, total)
}

// Get handles GET /api/vendors/:id
// @Summary Retrieve one of the caller's vendors
// @Tags vendors
// @Produce json
// @Param id path int true "Vendor ID"
// @Success 200 {object} utils.APIResponse{data=VendorResponse}
// @Security BearerAuth
// @Router /api/vendors/{id} [get]
func (h *VendorHandler) Get(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vendor ID", err)
		return
	}

	vendor, err := h.vendorService.Get(caller.ID, id)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to get vendor")
		return
	}

	utils.SuccessResponse(c, "Vendor retrieved successfully", toVendorResponse(vendor))
}

// Create handles POST /api/vendors
// @Summary Register a vendor for the caller
// @Tags vendors
// @Accept json
// @Produce json
// @Param request body VendorRequest true "Vendor payload"
// @Success 201 {object} utils.APIResponse{data=VendorResponse}
// @Security BearerAuth
// @Router /api/vendors [post]
func (h *VendorHandler) Create(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}

	var req VendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	vendor := &models.Vendor{
		ResidentID:   req.Resident,
		BusinessName: req.BusinessName,
	}
	if err := h.vendorService.Create(caller.ID, vendor); err != nil {
		handleServiceError(c, h.logger, err, "Failed to create vendor")
		return
	}

	utils.CreatedResponse(c, "Vendor created successfully", toVendorResponse(vendor))
}

// Update handles PUT/PATCH /api/vendors/:id
// @Summary Update one of the caller's vendors
// @Tags vendors
// @Accept json
// @Produce json
// @Param id path int true "Vendor ID"
// @Param request body VendorRequest true "Vendor payload"
// @Success 200 {object} utils.APIResponse{data=VendorResponse}
// @Security BearerAuth
// @Router /api/vendors/{id} [put]
func (h *VendorHandler) Update(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vendor ID", err)
		return
	}

	var req VendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	vendor, err := h.vendorService.Update(caller.ID, id, &models.Vendor{
		BusinessName: req.BusinessName,
	})
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to update vendor")
		return
	}

	utils.SuccessResponse(c, "Vendor updated successfully", toVendorResponse(vendor))
}

// Delete handles DELETE /api/vendors/:id
// @Summary Delete one of the caller's vendors
// @Tags vendors
// @Produce json
// @Param id path int true "Vendor ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/vendors/{id} [delete]
func (h *VendorHandler) Delete(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vendor ID", err)
		return
	}

	if err := h.vendorService.Delete(caller.ID, id); err != nil {
		handleServiceError(c, h.logger, err, "Failed to delete vendor")
		return
	}

	utils.SuccessResponse(c, "Vendor deleted successfully", nil)
}
