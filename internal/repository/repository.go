package repository

import (
	"context"

	"advertisement-api/internal/domain"
)

// UserRepository defines the interface for user data access.
// Lookup operations only return active users; Deactivate is the
// soft-delete used instead of removing rows.
type UserRepository interface {
	// Create creates a new user and fills in the generated ID
	Create(ctx context.Context, user *domain.User) error
	// GetByID retrieves an active user by ID
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	// GetByUsername retrieves an active user by username
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	// GetByEmail retrieves an active user by email
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// List retrieves active users with offset/limit pagination
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)
	// Update persists the current state of a user
	Update(ctx context.Context, user *domain.User) error
	// Deactivate soft-deletes a user
	Deactivate(ctx context.Context, id int64) error
	// ExistsByUsername checks if an active user exists with the given username
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	// ExistsByEmail checks if an active user exists with the given email
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// AdvertisementRepository defines the interface for listing data access
type AdvertisementRepository interface {
	// Create creates a new advertisement and fills in the generated ID
	Create(ctx context.Context, ad *domain.Advertisement) error
	// GetByID retrieves an advertisement by ID
	GetByID(ctx context.Context, id int64) (*domain.Advertisement, error)
	// List retrieves advertisements, optionally filtered by a
	// case-insensitive substring match on title or description
	List(ctx context.Context, search string, offset, limit int) ([]*domain.Advertisement, error)
	// Update persists the current state of an advertisement
	Update(ctx context.Context, ad *domain.Advertisement) error
	// Delete removes an advertisement
	Delete(ctx context.Context, id int64) error
}
