package service

import (
	"context"
	"time"

	"advertisement-api/internal/domain"
	"advertisement-api/internal/dto"
	"advertisement-api/internal/repository"
)

// UserService defines the interface for user account operations
type UserService interface {
	// Create registers a new user
	Create(ctx context.Context, req *dto.CreateUserRequest) (*domain.User, error)
	// Get retrieves an active user by ID; public, no actor needed
	Get(ctx context.Context, id int64) (*domain.User, error)
	// List retrieves active users; requires an authenticated actor
	List(ctx context.Context, actor *domain.Claims, offset, limit int) ([]*domain.User, error)
	// Update applies a sparse patch to a user; self or admin only
	Update(ctx context.Context, actor *domain.Claims, id int64, patch *domain.UserPatch) (*domain.User, error)
	// Delete soft-deletes a user; self or admin only
	Delete(ctx context.Context, actor *domain.Claims, id int64) (*domain.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	hasher   *PasswordHasher
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository, hasher *PasswordHasher) UserService {
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

// Create registers a new user
func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*domain.User, error) {
	role := req.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	taken, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	taken, err = s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Get retrieves an active user by ID
func (s *userService) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// List retrieves active users; requires an authenticated actor
func (s *userService) List(ctx context.Context, actor *domain.Claims, offset, limit int) ([]*domain.User, error) {
	if d := Decide(actor, PermissionCheck{}); !d.Allowed {
		return nil, denyError(d)
	}
	return s.userRepo.List(ctx, offset, limit)
}

// Update applies a sparse patch to a user. The permission check runs
// against the path id before the record is fetched, matching the
// self-or-admin rule regardless of whether the target exists.
func (s *userService) Update(ctx context.Context, actor *domain.Claims, id int64, patch *domain.UserPatch) (*domain.User, error) {
	if d := Decide(actor, PermissionCheck{TargetUserID: id}); !d.Allowed {
		return nil, denyError(d)
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if patch.Username != nil && *patch.Username != user.Username {
		taken, err := s.userRepo.ExistsByUsername(ctx, *patch.Username)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrUsernameTaken
		}
		user.Username = *patch.Username
	}

	if patch.Email != nil && *patch.Email != user.Email {
		taken, err := s.userRepo.ExistsByEmail(ctx, *patch.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailTaken
		}
		user.Email = *patch.Email
	}

	if patch.Password != nil {
		hash, err := s.hasher.Hash(*patch.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if patch.Role != nil {
		if !patch.Role.Valid() {
			return nil, ErrInvalidRole
		}
		user.Role = *patch.Role
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete soft-deletes a user
func (s *userService) Delete(ctx context.Context, actor *domain.Claims, id int64) (*domain.User, error) {
	if d := Decide(actor, PermissionCheck{TargetUserID: id}); !d.Allowed {
		return nil, denyError(d)
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := s.userRepo.Deactivate(ctx, id); err != nil {
		return nil, err
	}
	user.IsActive = false
	return user, nil
}
