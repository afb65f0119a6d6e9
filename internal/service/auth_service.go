package service

import (
	"context"

	"advertisement-api/internal/domain"
	"advertisement-api/internal/repository"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	// Login verifies credentials and issues an access token
	Login(ctx context.Context, username, password string) (string, error)
	// Authenticate verifies a bearer token and resolves the acting user.
	// Tokens of deactivated users verify but fail resolution here.
	Authenticate(ctx context.Context, tokenString string) (*domain.Claims, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenService
	hasher   *PasswordHasher
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, tokens TokenService, hasher *PasswordHasher) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		hasher:   hasher,
	}
}

// Login verifies credentials and issues an access token. Unknown and
// inactive usernames fail the same way as a wrong password so the
// response never reveals which part was wrong.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(user)
}

// Authenticate verifies a bearer token and resolves the acting user
func (s *authService) Authenticate(ctx context.Context, tokenString string) (*domain.Claims, error) {
	claims, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserInactive
	}

	return claims, nil
}
