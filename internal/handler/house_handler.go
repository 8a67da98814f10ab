package handler

import (
	"github.com/gin-gonic/gin"

	"hoa-be-svc/internal/models"
	"hoa-be-svc/internal/service"
	"hoa-be-svc/pkg/logger"
	"hoa-be-svc/pkg/utils"
)

// HouseHandler handles house-related HTTP requests
type HouseHandler struct {
	houseService service.HouseService
	logger       *logger.Logger
}

// NewHouseHandler creates a new house handler
func NewHouseHandler(houseService service.HouseService, logger *logger.Logger) *HouseHandler {
	return &HouseHandler{
		houseService: houseService,
		logger:       logger,
	}
}

// HouseRequest represents the house create/update payload
type HouseRequest struct {
	HouseNumber string `json:"house_number" binding:"required"`
	BlockLot    string `json:"block_lot" binding:"required"`
	Street      string `json:"street" binding:"required"`
}

// HouseResponse represents a house on the wire
type HouseResponse struct {
	ID          uint   `json:"id" example:"1"`
	HouseNumber string `json:"house_number" example:"12"`
	BlockLot    string `json:"block_lot" example:"B4 L7"`
	Street      string `json:"street" example:"Sampaguita St"`
}

func toHouseResponse(house *models.House) HouseResponse {
	return HouseResponse{
		ID:          house.ID,
		HouseNumber: house.HouseNumber,
		BlockLot:    house.BlockLot,
		Street:      house.Street,
	}
}

// List handles GET /api/houses
// @Summary List houses
// @Tags houses
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} utils.PaginatedResponse{data=[]HouseResponse}
// @Security BearerAuth
// @Router /api/houses [get]
func (h *HouseHandler) List(c *gin.Context) {
	page, perPage := utils.GetPagination(c)

	houses, total, err := h.houseService.List(page, perPage)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to list houses")
		return
	}

	responses := make([]HouseResponse, 0, len(houses))
	for i := range houses {
		responses = append(responses, toHouseResponse(&houses[i]))
	}

	utils.PaginatedSuccessResponse(c, "Houses retrieved successfully", responses, page, perPage, total)
}

// Get handles GET /api/houses/:id
// @Summary Retrieve a house
// @Tags houses
// @Produce json
// @Param id path int true "House ID"
// @Success 200 {object} utils.APIResponse{data=HouseResponse}
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/houses/{id} [get]
func (h *HouseHandler) Get(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid house ID", err)
		return
	}

	house, err := h.houseService.Get(id)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to get house")
		return
	}

	utils.SuccessResponse(c, "House retrieved successfully", toHouseResponse(house))
}

// Create handles POST /api/houses
// @Summary Create a house
// @Tags houses
// @Accept json
// @Produce json
// @Param request body HouseRequest true "House payload"
// @Success 201 {object} utils.APIResponse{data=HouseResponse}
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/houses [post]
func (h *HouseHandler) Create(c *gin.Context) {
	var req HouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	house := &models.House{
		HouseNumber: req.HouseNumber,
		BlockLot:    req.BlockLot,
		Street:      req.Street,
	}
	if err := h.houseService.Create(house); err != nil {
		handleServiceError(c, h.logger, err, "Failed to create house")
		return
	}

	utils.CreatedResponse(c, "House created successfully", toHouseResponse(house))
}

// Update handles PUT/PATCH /api/houses/:id
// @Summary Update a house
// @Tags houses
// @Accept json
// @Produce json
// @Param id path int true "House ID"
// @Param request body HouseRequest true "House payload"
// @Success 200 {object} utils.APIResponse{data=HouseResponse}
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/houses/{id} [put]
func (h *HouseHandler) Update(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid house ID", err)
		return
	}

	var req HouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	house, err := h.houseService.Update(id, &models.House{
		HouseNumber: req.HouseNumber,
		BlockLot:    req.BlockLot,
		Street:      req.Street,
	})
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to update house")
		return
	}

	utils.SuccessResponse(c, "House updated successfully", toHouseResponse(house))
}

// Delete handles DELETE /api/houses/:id
// @Summary Delete a house; residents keep their accounts with the house link cleared
// @Tags houses
// @Produce json
// @Param id path int true "House ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/houses/{id} [delete]
func (h *HouseHandler) Delete(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid house ID", err)
		return
	}

	if err := h.houseService.Delete(id); err != nil {
		handleServiceError(c, h.logger, err, "Failed to delete house")
		return
	}

	utils.SuccessResponse(c, "House deleted successfully", nil)
}
