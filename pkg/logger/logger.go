package logger

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger configuration
type Config struct {
	Level       string
	ServiceName string
	Development bool
}

var (
	global *zap.Logger
	mu     sync.Mutex
)

// Init initializes the global logger
func Init(cfg *Config) error {
	mu.Lock()
	defer mu.Unlock()

	var zapCfg zap.Config
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	if cfg.Level != "" {
		level, err := zapcore.ParseLevel(cfg.Level)
		if err == nil {
			zapCfg.Level = zap.NewAtomicLevelAt(level)
		}
	}

	log, err := zapCfg.Build(zap.Fields(zap.String("service", cfg.ServiceName)))
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	global = log
	return nil
}

// Get returns the global logger. Falls back to a no-op logger when
// Init has not been called, so tests never need to initialize it.
func Get() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		global = zap.NewNop()
	}
	return global
}

// Sync flushes buffered log entries
func Sync() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		_ = global.Sync()
	}
}
