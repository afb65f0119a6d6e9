package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"advertisement-api/internal/dto"
	"advertisement-api/internal/middleware"
	"advertisement-api/internal/service"
	"advertisement-api/pkg/response"
)

// UserHandler handles user account HTTP requests
type UserHandler struct {
	users service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Create registers a new user
// POST /user
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if ok, msg := req.ValidateEmail(); !ok {
		response.BadRequest(c, msg)
		return
	}

	user, err := h.users.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, dto.NewUserResponse(user))
}

// Get returns a user by id; public
// GET /user/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.NewUserResponse(user))
}

// List returns all active users; authenticated only
// GET /user
func (h *UserHandler) List(c *gin.Context) {
	offset, limit := pagination(c)

	users, err := h.users.List(c.Request.Context(), middleware.Actor(c), offset, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.NewUserListResponse(users))
}

// Update applies a sparse patch to a user; self or admin
// PATCH /user/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if ok, msg := req.ValidateEmail(); !ok {
		response.BadRequest(c, msg)
		return
	}

	user, err := h.users.Update(c.Request.Context(), middleware.Actor(c), id, req.Patch())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.NewUserResponse(user))
}

// Delete soft-deletes a user; self or admin
// DELETE /user/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.users.Delete(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.NewUserResponse(user))
}

// pathID parses the :id path parameter, writing a 400 response on failure
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}

// pagination parses skip/limit query parameters with the usual defaults
func pagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	return offset, limit
}
