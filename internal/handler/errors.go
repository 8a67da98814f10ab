package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hoa-be-svc/internal/service"
	"hoa-be-svc/pkg/logger"
	"hoa-be-svc/pkg/utils"
)

// handleServiceError maps typed service errors onto the API response envelope.
// Anything unrecognized is a 500.
func handleServiceError(c *gin.Context, log *logger.Logger, err error, failMessage string) {
	var validationErr *service.ValidationError
	var conflictErr *service.ConflictError
	var notFoundErr *service.NotFoundError
	var forbiddenErr *service.ForbiddenError

	switch {
	case errors.As(err, &validationErr):
		utils.ValidationErrorResponse(c, validationErr.Field, validationErr.Message)
	case errors.As(err, &conflictErr):
		utils.ConflictResponse(c, conflictErr.Field, conflictErr.Message)
	case errors.As(err, &notFoundErr):
		utils.NotFoundResponse(c, err.Error())
	case errors.As(err, &forbiddenErr):
		utils.ForbiddenResponse(c, forbiddenErr.Message)
	default:
		log.WithError(err).Error(failMessage)
		utils.InternalServerErrorResponse(c, failMessage, err)
	}
}
