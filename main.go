package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"advertisement-api/internal/di"
	"advertisement-api/internal/middleware"
	"advertisement-api/internal/repository"
	"advertisement-api/pkg/config"
	"advertisement-api/pkg/database"
	"advertisement-api/pkg/logger"
	"advertisement-api/pkg/telemetry"
)

func main() {
	// Load configuration. A missing JWT secret fails here; the service
	// never starts with an implicit signing key.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logCfg := &logger.Config{
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	}
	if err := logger.Init(logCfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	appLog := logger.Get()
	appLog.Info("Starting Advertisement API...")

	ctx := context.Background()

	// Initialize tracing
	tel, err := telemetry.Init(ctx, &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.App.Name,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
	})
	if err != nil {
		appLog.Fatal(fmt.Sprintf("Failed to initialize tracing: %v", err))
	}

	// Initialize database connection
	dbCfg := &database.PostgresConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxConns:        25,
		MinConns:        5,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: 30 * time.Minute,
		ConnectTimeout:  5 * time.Second,
		MaxRetries:      3,
		RetryInterval:   1 * time.Second,
		EnableTracing:   cfg.OTel.Enabled,
	}
	db, err := database.NewPostgres(ctx, dbCfg)
	if err != nil {
		appLog.Fatal(fmt.Sprintf("Database connection failed: %v", err))
	}
	defer db.Close()
	appLog.Info(fmt.Sprintf("Database connected (pool: min=%d, max=%d)", dbCfg.MinConns, dbCfg.MaxConns))

	if err := repository.Migrate(ctx, db.Pool()); err != nil {
		appLog.Fatal(fmt.Sprintf("Schema migration failed: %v", err))
	}

	// Build dependency injection container
	container, err := di.NewContainer(&di.ContainerConfig{
		DB:         db,
		UserRepo:   repository.NewPostgresUserRepository(db.Pool()),
		AdRepo:     repository.NewPostgresAdvertisementRepository(db.Pool()),
		JWTSecret:  cfg.JWT.Secret,
		TokenTTL:   cfg.JWT.TTL,
		BcryptCost: 12,
	})
	if err != nil {
		appLog.Fatal(fmt.Sprintf("Failed to build container: %v", err))
	}

	// Setup Gin
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	if cfg.OTel.Enabled {
		router.Use(telemetry.TracingMiddleware())
	}

	// Health check endpoints
	router.GET("/health", container.HealthHandler.Health)
	router.GET("/ready", container.HealthHandler.Ready)

	// Authentication
	router.POST("/login", container.AuthHandler.Login)

	requireAuth := middleware.RequireAuth(container.AuthService)

	// Users
	user := router.Group("/user")
	{
		user.POST("", container.UserHandler.Create)
		user.GET("/:id", container.UserHandler.Get)
		user.GET("", requireAuth, container.UserHandler.List)
		user.PATCH("/:id", requireAuth, container.UserHandler.Update)
		user.DELETE("/:id", requireAuth, container.UserHandler.Delete)
	}

	// Advertisements
	ad := router.Group("/advertisement")
	{
		ad.GET("/:id", container.AdvertisementHandler.Get)
		ad.GET("", container.AdvertisementHandler.List)
		ad.POST("", requireAuth, container.AdvertisementHandler.Create)
		ad.PATCH("/:id", requireAuth, container.AdvertisementHandler.Update)
		ad.DELETE("/:id", requireAuth, container.AdvertisementHandler.Delete)
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 2 * time.Second,
	}

	// Start server in goroutine
	go func() {
		appLog.Info(fmt.Sprintf("Advertisement API listening on %s", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal(fmt.Sprintf("Failed to start server: %v", err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Fatal(fmt.Sprintf("Server forced to shutdown: %v", err))
	}

	if err := tel.Shutdown(shutdownCtx); err != nil {
		appLog.Warn(fmt.Sprintf("Tracer shutdown: %v", err))
	}

	appLog.Info("Server exited gracefully")
}
