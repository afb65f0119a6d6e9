package di

import (
	"time"

	"advertisement-api/internal/handler"
	"advertisement-api/internal/repository"
	"advertisement-api/internal/service"
	"advertisement-api/pkg/database"
)

// Container holds all dependencies for the service
type Container struct {
	// Infrastructure
	DB *database.PostgresDB

	// Repositories
	UserRepo repository.UserRepository
	AdRepo   repository.AdvertisementRepository

	// Services
	TokenService         service.TokenService
	AuthService          service.AuthService
	UserService          service.UserService
	AdvertisementService service.AdvertisementService

	// Handlers
	HealthHandler        *handler.HealthHandler
	AuthHandler          *handler.AuthHandler
	UserHandler          *handler.UserHandler
	AdvertisementHandler *handler.AdvertisementHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	DB         *database.PostgresDB
	UserRepo   repository.UserRepository
	AdRepo     repository.AdvertisementRepository
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

// NewContainer creates a new dependency injection container.
// Fails when the token service cannot be constructed, which callers
// must treat as fatal.
func NewContainer(cfg *ContainerConfig) (*Container, error) {
	c := &Container{
		DB:       cfg.DB,
		UserRepo: cfg.UserRepo,
		AdRepo:   cfg.AdRepo,
	}

	tokens, err := service.NewTokenService(&service.TokenServiceConfig{
		Secret: cfg.JWTSecret,
		TTL:    cfg.TokenTTL,
	})
	if err != nil {
		return nil, err
	}
	c.TokenService = tokens

	hasher := service.NewPasswordHasher(cfg.BcryptCost)

	c.AuthService = service.NewAuthService(c.UserRepo, tokens, hasher)
	c.UserService = service.NewUserService(c.UserRepo, hasher)
	c.AdvertisementService = service.NewAdvertisementService(c.AdRepo)

	c.HealthHandler = handler.NewHealthHandler(c.DB)
	c.AuthHandler = handler.NewAuthHandler(c.AuthService)
	c.UserHandler = handler.NewUserHandler(c.UserService)
	c.AdvertisementHandler = handler.NewAdvertisementHandler(c.AdvertisementService)

	return c, nil
}
