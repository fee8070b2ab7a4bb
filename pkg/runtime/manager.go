package runtime

import (
	"context"

	"github.com/pkg/errors"
	"github.com/runlet/runlet/pkg/config"
	"github.com/runlet/runlet/pkg/logger"
)

// ErrCyclicDependency is returned when wiring a service would recurse into a
// dependency chain that leads back to itself.
var ErrCyclicDependency = errors.New("cyclic dependency")

// Manager owns the loaded service instances and drives their lifecycle.
//
// Loading iterates the registry in registration order and constructs one
// instance per registered type. A service that declares dependencies gets a
// freshly constructed instance per dependency; that instance belongs to the
// dependent alone and is distinct from any same-typed instance the manager
// holds in its own list. A dependent that starts or stops its injected
// dependency therefore never touches the manager-owned one.
type Manager struct {
	ctx       context.Context
	config    *config.Config
	logger    logger.Logger
	states    *ServiceStateManager
	instances []Service
}

// NewManager creates a Manager. A nil states manager gets replaced with a
// fresh one so state tracking is always available.
func NewManager(ctx context.Context, cfg *config.Config, log logger.Logger, states *ServiceStateManager) *Manager {
	if states == nil {
		states = NewServiceStateManager(log, nil)
	}
	return &Manager{
		ctx:    ctx,
		config: cfg,
		logger: log,
		states: states,
	}
}

// States returns the state manager tracking this manager's services.
func (m *Manager) States() *ServiceStateManager {
	return m.states
}

// Instances returns the loaded service instances in load order.
func (m *Manager) Instances() []Service {
	out := make([]Service, len(m.instances))
	copy(out, m.instances)
	return out
}

// LoadServices constructs an instance for every registered service type, in
// registration order, wiring declared dependencies along the way. The first
// construction or wiring failure aborts the load and propagates; no partial
// recovery is attempted.
func (m *Manager) LoadServices() error {
	for _, service := range ListAvailableServices() {
		m.states.SetState(service, Initializing)
		instance, err := m.GetService(service)
		if err != nil {
			m.states.SetState(service, Failed)
			return errors.Wrapf(err, "failed to load service %s", service)
		}
		m.states.SetState(service, Initialized)
		m.instances = append(m.instances, instance)
	}
	return nil
}

// GetService constructs and returns a new instance of the given service type,
// including freshly constructed instances for its declared dependencies.
// An unregistered type yields an error wrapping ErrServiceNotFound.
func (m *Manager) GetService(service ServiceType) (Service, error) {
	return m.buildService(service, map[ServiceType]bool{})
}

func (m *Manager) buildService(service ServiceType, visiting map[ServiceType]bool) (Service, error) {
	reg, ok := GetFactory(service)
	if !ok {
		return nil, errors.Wrapf(ErrServiceNotFound, "service %s", service)
	}
	if visiting[service] {
		return nil, errors.Wrapf(ErrCyclicDependency, "service %s", service)
	}
	visiting[service] = true
	defer delete(visiting, service)

	deps := make(map[ServiceType]Service, len(reg.Dependencies))
	for _, dep := range reg.Dependencies {
		instance, err := m.buildService(dep, visiting)
		if err != nil {
			return nil, errors.Wrapf(err, "wiring dependency %s for service %s", dep, service)
		}
		deps[dep] = instance
	}

	instance, err := reg.Factory(m.ctx, Options{
		Config:       m.config,
		Logger:       m.logger,
		Dependencies: deps,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "constructing service %s", service)
	}
	return instance, nil
}

// StartAll starts every loaded instance sequentially, in load order. The
// first failure aborts the remaining iteration and propagates; already
// started services are left running.
func (m *Manager) StartAll() error {
	for _, instance := range m.instances {
		m.states.SetState(instance.Type(), Starting)
		if err := instance.Start(); err != nil {
			m.states.SetState(instance.Type(), Failed)
			return errors.Wrapf(err, "failed to start service %s", instance.Type())
		}
		m.states.SetState(instance.Type(), Started)
		m.logger.Info("Service successfully started", "service", instance.Type().String())
	}
	return nil
}

// StopAll stops every loaded instance sequentially, in load order. The first
// failure aborts the remaining iteration and propagates.
func (m *Manager) StopAll() error {
	for _, instance := range m.instances {
		if err := instance.Stop(); err != nil {
			m.states.SetState(instance.Type(), Failed)
			return errors.Wrapf(err, "failed to stop service %s", instance.Type())
		}
		m.states.SetState(instance.Type(), Stopped)
	}
	return nil
}
