package dto

import (
	"time"

	"advertisement-api/internal/domain"
)

// CreateAdvertisementRequest represents a new listing
type CreateAdvertisementRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=100"`
	Description string `json:"description"`
	Price       *int64 `json:"price" binding:"required,min=0"`
}

// UpdateAdvertisementRequest represents a sparse listing update
type UpdateAdvertisementRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	Price       *int64  `json:"price" binding:"omitempty,min=0"`
}

// Patch converts the request to a domain patch
func (r *UpdateAdvertisementRequest) Patch() *domain.AdvertisementPatch {
	return &domain.AdvertisementPatch{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
	}
}

// AdvertisementResponse represents listing data in responses
type AdvertisementResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       int64   `json:"price"`
	OwnerID     int64   `json:"owner_id"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   *string `json:"updated_at"`
}

// NewAdvertisementResponse converts a domain advertisement to its response form
func NewAdvertisementResponse(ad *domain.Advertisement) AdvertisementResponse {
	resp := AdvertisementResponse{
		ID:          ad.ID,
		Title:       ad.Title,
		Description: ad.Description,
		Price:       ad.Price,
		OwnerID:     ad.OwnerID,
		CreatedAt:   ad.CreatedAt.Format(time.RFC3339),
	}
	if ad.UpdatedAt != nil {
		updated := ad.UpdatedAt.Format(time.RFC3339)
		resp.UpdatedAt = &updated
	}
	return resp
}

// NewAdvertisementListResponse converts a slice of domain advertisements
func NewAdvertisementListResponse(ads []*domain.Advertisement) []AdvertisementResponse {
	out := make([]AdvertisementResponse, 0, len(ads))
	for _, ad := range ads {
		out = append(out, NewAdvertisementResponse(ad))
	}
	return out
}
