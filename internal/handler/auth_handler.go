package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hoa-be-svc/internal/service"
	"hoa-be-svc/pkg/logger"
	"hoa-be-svc/pkg/utils"
)

// AuthHandler handles registration and token issuance
type AuthHandler struct {
	authService service.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// RegisterRequest represents the registration payload
type RegisterRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Name       string `json:"name" binding:"required"`
	ContactNo  string `json:"contact_no" binding:"required"`
	ResidentID string `json:"resident_id" binding:"required"`
	House      *uint  `json:"house"`
	Password   string `json:"password" binding:"required,min=8"`
	Password2  string `json:"password2" binding:"required"`
}

// TokenRequest represents the login payload
type TokenRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenRefreshRequest represents the refresh payload
type TokenRefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// Register handles POST /register/
// @Summary Register a new resident account
// @Description Create a resident account. Password and confirmation must match; the username is set to the email.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration payload"
// @Success 201 {object} utils.APIResponse{data=UserResponse} "User registered successfully"
// @Failure 400 {object} utils.APIResponse "Validation failed"
// @Failure 409 {object} utils.APIResponse "Email or resident ID already taken"
// @Router /register/ [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	user, err := h.authService.Register(service.RegisterInput{
		Email:      req.Email,
		Name:       req.Name,
		ContactNo:  req.ContactNo,
		ResidentID: req.ResidentID,
		HouseID:    req.House,
		Password:   req.Password,
		Password2:  req.Password2,
	})
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to register user")
		return
	}

	utils.CreatedResponse(c, "User registered successfully", toUserResponse(user))
}

// Token handles POST /token/
// @Summary Obtain an access/refresh token pair
// @Description Check credentials and issue signed tokens carrying name, resident_id and email claims.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Credentials"
// @Success 200 {object} service.TokenPair "Token pair"
// @Failure 401 {object} utils.APIResponse "Invalid credentials"
// @Router /token/ [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	pair, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			utils.UnauthorizedResponse(c, "No active account found with the given credentials")
			return
		}
		handleServiceError(c, h.logger, err, "Failed to issue tokens")
		return
	}

	c.JSON(200, pair)
}

// TokenRefresh handles POST /token/refresh/
// @Summary Exchange a refresh token for a new access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body TokenRefreshRequest true "Refresh token"
// @Success 200 {object} map[string]string "New access token"
// @Failure 401 {object} utils.APIResponse "Invalid or expired refresh token"
// @Router /token/refresh/ [post]
func (h *AuthHandler) TokenRefresh(c *gin.Context) {
	var req TokenRefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	access, err := h.authService.Refresh(req.Refresh)
	if err != nil {
		utils.UnauthorizedResponse(c, "Token is invalid or expired")
		return
	}

	c.JSON(200, gin.H{"access": access})
}
