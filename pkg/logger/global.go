package logger

import (
	"sync"

	"github.com/runlet/runlet/pkg/config"
)

// Global logger instance and mutex for thread-safe operations
var (
	globalLogger Logger
	mu           sync.RWMutex
)

// SetGlobalLogger sets the global logger instance.
// It should be called once during application initialization.
func SetGlobalLogger(l Logger) error {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = l
	return nil
}

// G retrieves the global logger instance.
// Returns a no-op logger if no global logger is set.
func G() Logger {
	mu.RLock()
	defer mu.RUnlock()
	if globalLogger != nil {
		return globalLogger
	}
	return NewNoOpLogger()
}

// InitializeGlobalLogger builds a logger from configuration and installs it
// as the global instance. Can be accessed later on via G().
func InitializeGlobalLogger(cfg config.Logger) (Logger, error) {
	l, err := Factory(cfg)
	if err != nil {
		return nil, err
	}
	if err := SetGlobalLogger(l); err != nil {
		return nil, err
	}
	return l, nil
}

// Sync flushes any buffered log entries on the global logger.
func Sync() error {
	mu.RLock()
	defer mu.RUnlock()
	if z, ok := globalLogger.(*ZapLogger); ok {
		return z.Sync()
	}
	return nil
}
