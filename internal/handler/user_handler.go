package handler

import (
	"github.com/gin-gonic/gin"

	"hoa-be-svc/internal/middleware"
	"hoa-be-svc/internal/models"
	"hoa-be-svc/internal/service"
	"hoa-be-svc/pkg/logger"
	"hoa-be-svc/pkg/utils"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService service.UserService
	logger      *logger.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserService, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// UserResponse represents a user on the wire; the password hash is never
// exposed and the house link is rendered as its identifier
type UserResponse struct {
	ID         uint   `json:"id" example:"1"`
	Username   string `json:"username" example:"juan@example.com"`
	Email      string `json:"email" example:"juan@example.com"`
	Name       string `json:"name" example:"Juan Dela Cruz"`
	ContactNo  string `json:"contact_no" example:"+639171234567"`
	ResidentID string `json:"resident_id" example:"RES-0001"`
	House      *uint  `json:"house" example:"3"`
}

// UpdateUserRequest represents the user update payload; omitted fields are
// left unchanged
type UpdateUserRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email" binding:"omitempty,email"`
	ContactNo  *string `json:"contact_no"`
	House      *uint   `json:"house"`
	ClearHouse bool    `json:"clear_house"`
}

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		Name:       user.Name,
		ContactNo:  user.ContactNo,
		ResidentID: user.ResidentNo,
		House:      user.HouseID,
	}
}

// List handles GET /api/users
// @Summary List residents
// @Tags users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} utils.PaginatedResponse{data=[]UserResponse}
// @Security BearerAuth
// @Router /api/users [get]
func (h *UserHandler) List(c *gin.Context) {
	page, perPage := utils.GetPagination(c)

	users, total, err := h.userService.List(page, perPage)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to list users")
		return
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, toUserResponse(&users[i]))
	}

	utils.PaginatedSuccessResponse(c, "Users retrieved successfully", responses, page, perPage, total)
}

// Get handles GET /api/users/:id
// @Summary Retrieve a resident
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.APIResponse{data=UserResponse}
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", err)
		return
	}

	user, err := h.userService.Get(id)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to get user")
		return
	}

	utils.SuccessResponse(c, "User retrieved successfully", toUserResponse(user))
}

// Update handles PUT/PATCH /api/users/:id
// @Summary Update the caller's own account
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse{data=UserResponse}
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", err)
		return
	}

	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	user, err := h.userService.Update(caller.ID, id, service.UserUpdate{
		Name:       req.Name,
		Email:      req.Email,
		ContactNo:  req.ContactNo,
		HouseID:    req.House,
		ClearHouse: req.ClearHouse,
	})
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to update user")
		return
	}

	utils.SuccessResponse(c, "User updated successfully", toUserResponse(user))
}

// Delete handles DELETE /api/users/:id
// @Summary Delete the caller's own account and all of its records
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", err)
		return
	}

	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}

	if err := h.userService.Delete(caller.ID, id); err != nil {
		handleServiceError(c, h.logger, err, "Failed to delete user")
		return
	}

	utils.SuccessResponse(c, "User deleted successfully", nil)
}
