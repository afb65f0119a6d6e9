package domain

import (
	"time"
)

// Advertisement represents a classified-ad listing
type Advertisement struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Price       int64      `json:"price"`
	OwnerID     int64      `json:"owner_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// AdvertisementPatch is a sparse update applied to a stored advertisement.
// Nil fields are left unchanged.
type AdvertisementPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
}
