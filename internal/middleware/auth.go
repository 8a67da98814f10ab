package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"hoa-be-svc/internal/service"
	"hoa-be-svc/pkg/utils"
)

// ContextUserKey is the gin context key holding the authenticated principal
const ContextUserKey = "currentUser"

// AuthenticatedUser is the principal stored in the gin context after a
// successful bearer-token check
type AuthenticatedUser struct {
	ID         uint
	Name       string
	ResidentID string
	Email      string
}

// Authenticate validates the bearer access token and stores the caller in the
// request context
func Authenticate(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.UnauthorizedResponse(c, "Authorization header is required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.UnauthorizedResponse(c, "Authorization header format must be Bearer {token}")
			c.Abort()
			return
		}

		claims, err := authService.ValidateAccessToken(parts[1])
		if err != nil {
			utils.UnauthorizedResponse(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextUserKey, AuthenticatedUser{
			ID:         claims.UserID,
			Name:       claims.Name,
			ResidentID: claims.ResidentID,
			Email:      claims.Email,
		})
		c.Next()
	}
}

// CurrentUser returns the authenticated principal from the gin context
func CurrentUser(c *gin.Context) (AuthenticatedUser, error) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return AuthenticatedUser{}, errors.New("no authenticated user in context")
	}
	user, ok := value.(AuthenticatedUser)
	if !ok {
		return AuthenticatedUser{}, errors.New("invalid authenticated user in context")
	}
	return user, nil
}
