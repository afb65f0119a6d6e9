package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"advertisement-api/internal/service"
	"advertisement-api/pkg/response"
)

// handleServiceError maps service errors to the HTTP error envelope
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, "Incorrect username or password")
	case errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrTokenExpired),
		errors.Is(err, service.ErrUserInactive),
		errors.Is(err, service.ErrAuthRequired):
		response.Unauthorized(c, "Invalid or expired token")
	case errors.Is(err, service.ErrPermissionDenied):
		response.Forbidden(c, "Not enough permissions")
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, "User not found")
	case errors.Is(err, service.ErrAdNotFound):
		response.NotFound(c, "Advertisement not found")
	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrInvalidRole):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c)
	}
}
