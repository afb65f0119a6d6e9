package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingJWTSecret is returned when no signing secret is configured.
// The service refuses to start rather than fall back to an implicit key.
var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")

// Config holds all application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	OTel     OTelConfig     `mapstructure:"otel"`
}

// AppConfig holds application-level settings
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"` // development, staging, production
	Version     string `mapstructure:"version"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// DatabaseConfig holds PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// JWTConfig holds token signing settings
type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	TTL    time.Duration `mapstructure:"ttl"`
}

// OTelConfig holds OpenTelemetry settings
type OTelConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	CollectorAddr string `mapstructure:"collector_addr"`
}

// IsDevelopment returns true when running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// Validate checks invariants that must hold before the service starts
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return ErrMissingJWTSecret
	}
	if c.JWT.TTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive, got %v", c.JWT.TTL)
	}
	return nil
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")

	// Read from .env file if present; env vars may still be set
	_ = v.ReadInConfig()

	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{}
	if err := bindConfig(v, cfg); err != nil {
		return nil, fmt.Errorf("failed to bind config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("APP_NAME", "advertisement-api")
	v.SetDefault("APP_ENVIRONMENT", "development")
	v.SetDefault("APP_VERSION", "1.0.0")

	// Server defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_READ_TIMEOUT", "30s")
	v.SetDefault("SERVER_WRITE_TIMEOUT", "30s")
	v.SetDefault("SERVER_IDLE_TIMEOUT", "120s")

	// Database defaults
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", 5432)
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "postgres")
	v.SetDefault("DATABASE_DBNAME", "advertisement_db")
	v.SetDefault("DATABASE_SSLMODE", "disable")

	// JWT defaults. The secret deliberately has no default.
	v.SetDefault("JWT_TTL", "48h")

	// OTel defaults
	v.SetDefault("OTEL_ENABLED", false)
	v.SetDefault("OTEL_COLLECTOR_ADDR", "localhost:4317")
}

func bindConfig(v *viper.Viper, cfg *Config) error {
	cfg.App = AppConfig{
		Name:        v.GetString("APP_NAME"),
		Environment: v.GetString("APP_ENVIRONMENT"),
		Version:     v.GetString("APP_VERSION"),
	}
	cfg.Server = ServerConfig{
		Host:         v.GetString("SERVER_HOST"),
		Port:         v.GetInt("SERVER_PORT"),
		ReadTimeout:  v.GetDuration("SERVER_READ_TIMEOUT"),
		WriteTimeout: v.GetDuration("SERVER_WRITE_TIMEOUT"),
		IdleTimeout:  v.GetDuration("SERVER_IDLE_TIMEOUT"),
	}
	cfg.Database = DatabaseConfig{
		Host:     v.GetString("DATABASE_HOST"),
		Port:     v.GetInt("DATABASE_PORT"),
		User:     v.GetString("DATABASE_USER"),
		Password: v.GetString("DATABASE_PASSWORD"),
		DBName:   v.GetString("DATABASE_DBNAME"),
		SSLMode:  v.GetString("DATABASE_SSLMODE"),
	}
	cfg.JWT = JWTConfig{
		Secret: v.GetString("JWT_SECRET"),
		TTL:    v.GetDuration("JWT_TTL"),
	}
	cfg.OTel = OTelConfig{
		Enabled:       v.GetBool("OTEL_ENABLED"),
		CollectorAddr: v.GetString("OTEL_COLLECTOR_ADDR"),
	}
	return nil
}
