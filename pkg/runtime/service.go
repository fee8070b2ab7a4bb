package runtime

import (
	"context"

	"github.com/pkg/errors"
	"github.com/runlet/runlet/pkg/config"
	"github.com/runlet/runlet/pkg/logger"
)

// Service is the uniform lifecycle capability every managed service exposes.
type Service interface {
	Type() ServiceType
	Start() error
	Stop() error
}

// StartupHook is implemented by services that run work before the start
// announcement. The default behavior without the hook is a no-op.
type StartupHook interface {
	OnStartup() error
}

// ShutdownHook is implemented by services that run work before the stop
// announcement. The default behavior without the hook is a no-op.
type ShutdownHook interface {
	OnShutdown() error
}

// DependencyAware is implemented by services that consume other services.
// The reported types mirror the dependency list declared at registration
// time, which is what the manager actually wires from.
type DependencyAware interface {
	Dependencies() []ServiceType
}

// Options carries everything a Factory needs to construct a service instance.
type Options struct {
	// Config is the application configuration shared across all services.
	Config *config.Config

	// Logger is the logger handed to the constructed service.
	Logger logger.Logger

	// Dependencies holds one freshly constructed instance per dependency
	// type declared at registration time. The instance is owned by the
	// dependent, not by the manager.
	Dependencies map[ServiceType]Service
}

// Factory constructs a service instance from the given options.
type Factory func(ctx context.Context, opts Options) (Service, error)

// StartService drives the uniform start sequence for a service: the optional
// startup hook first, then the start announcement. A failing hook propagates
// its error and suppresses the announcement.
func StartService(svc Service, log logger.Logger) error {
	if hook, ok := svc.(StartupHook); ok {
		if err := hook.OnStartup(); err != nil {
			return errors.Wrapf(err, "startup hook for service %s", svc.Type())
		}
	}
	log.Info("Service started", "service", svc.Type().String())
	return nil
}

// StopService drives the uniform stop sequence for a service: the optional
// shutdown hook first, then the stop announcement. A failing hook propagates
// its error and suppresses the announcement.
func StopService(svc Service, log logger.Logger) error {
	if hook, ok := svc.(ShutdownHook); ok {
		if err := hook.OnShutdown(); err != nil {
			return errors.Wrapf(err, "shutdown hook for service %s", svc.Type())
		}
	}
	log.Info("Service stopped", "service", svc.Type().String())
	return nil
}
