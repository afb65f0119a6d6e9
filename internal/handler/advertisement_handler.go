package handler

import (
	"github.com/gin-gonic/gin"

	"advertisement-api/internal/dto"
	"advertisement-api/internal/middleware"
	"advertisement-api/internal/service"
	"advertisement-api/pkg/response"
)

// AdvertisementHandler handles listing HTTP requests
type AdvertisementHandler struct {
	ads service.AdvertisementService
}

// NewAdvertisementHandler creates a new AdvertisementHandler
func NewAdvertisementHandler(ads service.AdvertisementService) *AdvertisementHandler {
	return &AdvertisementHandler{ads: ads}
}

// Create creates a listing owned by the authenticated user
// POST /advertisement
func (h *AdvertisementHandler) Create(c *gin.Context) {
	var req dto.CreateAdvertisementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	ad, err := h.ads.Create(c.Request.Context(), middleware.Actor(c), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, dto.NewAdvertisementResponse(ad))
}

// Get returns a listing by id; public
// GET /advertisement/:id
func (h *AdvertisementHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ad, err := h.ads.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.NewAdvertisementResponse(ad))
}

// List returns listings with optional search; public
// GET /advertisement
func (h *AdvertisementHandler) List(c *gin.Context) {
	offset, limit := pagination(c)
	search := c.Query("search")

	ads, err := h.ads.List(c.Request.Context(), search, offset, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.NewAdvertisementListResponse(ads))
}

// Update applies a sparse patch to a listing; owner or admin
// PATCH /advertisement/:id
func (h *AdvertisementHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateAdvertisementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	ad, err := h.ads.Update(c.Request.Context(), middleware.Actor(c), id, req.Patch())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.NewAdvertisementResponse(ad))
}

// Delete removes a listing; owner or admin
// DELETE /advertisement/:id
func (h *AdvertisementHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.ads.Delete(c.Request.Context(), middleware.Actor(c), id); err != nil {
		handleServiceError(c, err)
		return
	}

	response.NoContent(c)
}
