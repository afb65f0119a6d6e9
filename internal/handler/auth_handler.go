package handler

import (
	"github.com/gin-gonic/gin"

	"advertisement-api/internal/dto"
	"advertisement-api/internal/service"
	"advertisement-api/pkg/response"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	auth service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login authenticates a user and returns a bearer token
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
