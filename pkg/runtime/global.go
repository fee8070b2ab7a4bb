package runtime

import (
	"context"

	"github.com/runlet/runlet/pkg/config"
	"github.com/runlet/runlet/pkg/logger"
	"github.com/runlet/runlet/pkg/observability"
)

// Global variables that provide access to core runtime components.
var (
	ssm    *ServiceStateManager // ssm holds a global instance of the ServiceStateManager for service state tracking.
	global *Manager             // global is a reference to the globally initialized Manager instance.
)

// InitializeManager initializes and returns a new Manager instance. It also
// initializes the global service state manager (SSM) for cross-service state
// signaling and stores the reference to the global Manager. This function
// should be called only once during the application startup.
func InitializeManager(ctx context.Context, cfg *config.Config, log logger.Logger, obs *observability.Observability) (*Manager, error) {
	// Initialize state manager for cross-service state signaling
	ssm = NewServiceStateManager(log, obs)

	manager := NewManager(ctx, cfg, log, ssm)

	// Set the global Manager reference.
	global = manager

	return manager, nil
}

// G returns the globally initialized Manager instance.
// This function provides a convenient way to access the Manager from anywhere
// within the application.
func G() *Manager {
	return global
}

// SSM returns the global ServiceStateManager instance.
// This function provides access to the global ServiceStateManager, which
// tracks the state of all services and allows for cross-service state
// signaling.
func SSM() *ServiceStateManager {
	return ssm
}
