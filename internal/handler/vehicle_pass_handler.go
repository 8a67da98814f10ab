package handler

import (
	"github.com/gin-gonic/gin"

	"hoa-be-svc/internal/middleware"
	"hoa-be-svc/internal/models"
	"hoa-be-svc/internal/service"
	"hoa-be-svc/pkg/logger"
	"hoa-be-svc/pkg/utils"
)

// VehiclePassHandler handles vehicle pass HTTP requests
type VehiclePassHandler struct {
	passService service.VehiclePassService
	logger      *logger.Logger
}

// NewVehiclePassHandler creates a new vehicle pass handler
func NewVehiclePassHandler(passService service.VehiclePassService, logger *logger.Logger) *VehiclePassHandler {
	return &VehiclePassHandler{
		passService: passService,
		logger:      logger,
	}
}

// VehiclePassRequest represents the vehicle pass create/update payload
type VehiclePassRequest struct {
	Resident      uint    `json:"resident" binding:"required"`
	VehiclePassID string  `json:"vehicle_pass_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	ModeOfPayment string  `json:"mode_of_payment" binding:"required"`
	VehicleModel  string  `json:"vehicle_model" binding:"required"`
	PlateNumber   string  `json:"plate_number" binding:"required"`
}

// VehiclePassResponse represents a vehicle pass on the wire
type VehiclePassResponse struct {
	ID            uint    `json:"id"`
	Resident      uint    `json:"resident"`
	VehiclePassID string  `json:"vehicle_pass_id"`
	Amount        float64 `json:"amount"`
	ModeOfPayment string  `json:"mode_of_payment"`
	VehicleModel  string  `json:"vehicle_model"`
	PlateNumber   string  `json:"plate_number"`
}

func toVehiclePassResponse(pass *models.VehiclePass) VehiclePassResponse {
	return VehiclePassResponse{
		ID:            pass.ID,
		Resident:      pass.ResidentID,
		VehiclePassID: pass.VehiclePassID,
		Amount:        pass.Amount,
		ModeOfPayment: pass.ModeOfPayment,
		VehicleModel:  pass.VehicleModel,
		PlateNumber:   pass.PlateNumber,
	}
}

func (h *VehiclePassHandler) toModel(req *VehiclePassRequest) *models.VehiclePass {
	return &models.VehiclePass{
		ResidentID:    req.Resident,
		VehiclePassID: req.VehiclePassID,
		Amount:        req.Amount,
		ModeOfPayment: req.ModeOfPayment,
		VehicleModel:  req.VehicleModel,
		PlateNumber:   req.PlateNumber,
	}
}

// List handles GET /api/vehicle-passes
// @Summary List the caller's vehicle passes
// @Tags vehicle-passes
// @Produce json
// @Success 200 {object} utils.PaginatedResponse{data=[]VehiclePassResponse}
// @Security BearerAuth
// @Router /api/vehicle-passes [get]
func (h *VehiclePassHandler) List(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}
	page, perPage := utils.GetPagination(c)

	passes, total, err := h.passService.List(caller.ID, page, perPage)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to list vehicle passes")
		return
	}

	responses := make([]VehiclePassResponse, 0, len(passes))
	for i := range passes {
		responses = append(responses, toVehiclePassResponse(&passes[i]))
	}

	utils.PaginatedSuccessResponse(c, "Vehicle passes retrieved successfully", responses, page, perPage, total)
}

// Get handles GET /api/vehicle-passes/:id
// @Summary Retrieve one of the caller's vehicle passes
// @Tags vehicle-passes
// @Produce json
// @Param id path int true "Vehicle pass ID"
// @Success 200 {object} utils.APIResponse{data=VehiclePassResponse}
// @Security BearerAuth
// @Router /api/vehicle-passes/{id} [get]
func (h *VehiclePassHandler) Get(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle pass ID", err)
		return
	}

	pass, err := h.passService.Get(caller.ID, id)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to get vehicle pass")
		return
	}

	utils.SuccessResponse(c, "Vehicle pass retrieved successfully", toVehiclePassResponse(pass))
}

// Create handles POST /api/vehicle-passes
// @Summary Purchase a vehicle pass; the pass identifier must be unique
// @Tags vehicle-passes
// @Accept json
// @Produce json
// @Param request body VehiclePassRequest true "Vehicle pass payload"
// @Success 201 {object} utils.APIResponse{data=VehiclePassResponse}
// @Failure 409 {object} utils.APIResponse "Duplicate pass identifier"
// @Security BearerAuth
// @Router /api/vehicle-passes [post]
func (h *VehiclePassHandler) Create(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}

	var req VehiclePassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	pass := h.toModel(&req)
	if err := h.passService.Create(caller.ID, pass); err != nil {
		handleServiceError(c, h.logger, err, "Failed to create vehicle pass")
		return
	}

	utils.CreatedResponse(c, "Vehicle pass created successfully", toVehiclePassResponse(pass))
}

// Update handles PUT/PATCH /api/vehicle-passes/:id
// @Summary Update one of the caller's vehicle passes
// @Tags vehicle-passes
// @Accept json
// @Produce json
// @Param id path int true "Vehicle pass ID"
// @Param request body VehiclePassRequest true "Vehicle pass payload"
// @Success 200 {object} utils.APIResponse{data=VehiclePassResponse}
// @Security BearerAuth
// @Router /api/vehicle-passes/{id} [put]
func (h *VehiclePassHandler) Update(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle pass ID", err)
		return
	}

	var req VehiclePassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	pass, err := h.passService.Update(caller.ID, id, h.toModel(&req))
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to update vehicle pass")
		return
	}

	utils.SuccessResponse(c, "Vehicle pass updated successfully", toVehiclePassResponse(pass))
}

// Delete handles DELETE /api/vehicle-passes/:id
// @Summary Delete one of the caller's vehicle passes
// @Tags vehicle-passes
// @Produce json
// @Param id path int true "Vehicle pass ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/vehicle-passes/{id} [delete]
func (h *VehiclePassHandler) Delete(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle pass ID", err)
		return
	}

	if err := h.passService.Delete(caller.ID, id); err != nil {
		handleServiceError(c, h.logger, err, "Failed to delete vehicle pass")
		return
	}

	utils.SuccessResponse(c, "Vehicle pass deleted successfully", nil)
}
