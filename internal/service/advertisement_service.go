package service

import (
	"context"
	"time"

	"advertisement-api/internal/domain"
	"advertisement-api/internal/dto"
	"advertisement-api/internal/repository"
)

// AdvertisementService defines the interface for listing operations
type AdvertisementService interface {
	// Create creates a listing owned by the actor
	Create(ctx context.Context, actor *domain.Claims, req *dto.CreateAdvertisementRequest) (*domain.Advertisement, error)
	// Get retrieves a listing by ID; public
	Get(ctx context.Context, id int64) (*domain.Advertisement, error)
	// List retrieves listings with optional search; public
	List(ctx context.Context, search string, offset, limit int) ([]*domain.Advertisement, error)
	// Update applies a sparse patch to a listing; owner or admin only
	Update(ctx context.Context, actor *domain.Claims, id int64, patch *domain.AdvertisementPatch) (*domain.Advertisement, error)
	// Delete removes a listing; owner or admin only
	Delete(ctx context.Context, actor *domain.Claims, id int64) error
}

type advertisementService struct {
	adRepo repository.AdvertisementRepository
}

// NewAdvertisementService creates a new AdvertisementService
func NewAdvertisementService(adRepo repository.AdvertisementRepository) AdvertisementService {
	return &advertisementService{adRepo: adRepo}
}

// Create creates a listing owned by the actor
func (s *advertisementService) Create(ctx context.Context, actor *domain.Claims, req *dto.CreateAdvertisementRequest) (*domain.Advertisement, error) {
	if d := Decide(actor, PermissionCheck{}); !d.Allowed {
		return nil, denyError(d)
	}

	ad := &domain.Advertisement{
		Title:       req.Title,
		Description: req.Description,
		Price:       *req.Price,
		OwnerID:     actor.UserID,
		CreatedAt:   time.Now(),
	}

	if err := s.adRepo.Create(ctx, ad); err != nil {
		return nil, err
	}
	return ad, nil
}

// Get retrieves a listing by ID
func (s *advertisementService) Get(ctx context.Context, id int64) (*domain.Advertisement, error) {
	ad, err := s.adRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ad == nil {
		return nil, ErrAdNotFound
	}
	return ad, nil
}

// List retrieves listings with optional search
func (s *advertisementService) List(ctx context.Context, search string, offset, limit int) ([]*domain.Advertisement, error) {
	return s.adRepo.List(ctx, search, offset, limit)
}

// Update applies a sparse patch to a listing. A nonexistent id is
// reported as not found before the ownership check runs, so absent
// resources never surface as permission failures.
func (s *advertisementService) Update(ctx context.Context, actor *domain.Claims, id int64, patch *domain.AdvertisementPatch) (*domain.Advertisement, error) {
	ad, err := s.adRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ad == nil {
		return nil, ErrAdNotFound
	}

	if d := Decide(actor, PermissionCheck{TargetOwnerID: ad.OwnerID}); !d.Allowed {
		return nil, denyError(d)
	}

	if patch.Title != nil {
		ad.Title = *patch.Title
	}
	if patch.Description != nil {
		ad.Description = *patch.Description
	}
	if patch.Price != nil {
		ad.Price = *patch.Price
	}

	if err := s.adRepo.Update(ctx, ad); err != nil {
		return nil, err
	}

	now := time.Now()
	ad.UpdatedAt = &now
	return ad, nil
}

// Delete removes a listing
func (s *advertisementService) Delete(ctx context.Context, actor *domain.Claims, id int64) error {
	ad, err := s.adRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ad == nil {
		return ErrAdNotFound
	}

	if d := Decide(actor, PermissionCheck{TargetOwnerID: ad.OwnerID}); !d.Allowed {
		return denyError(d)
	}

	return s.adRepo.Delete(ctx, id)
}
