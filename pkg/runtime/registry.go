package runtime

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/runlet/runlet/pkg/logger"
)

// ServiceType represents the type of service.
type ServiceType string

// String returns the string representation of the ServiceType.
func (s ServiceType) String() string {
	return string(s)
}

var (
	TestServiceType         ServiceType = "test"
	EmailServiceType        ServiceType = "email"
	NotificationServiceType ServiceType = "notification"

	// ErrServiceNotFound is returned when a requested service type has no
	// registered factory.
	ErrServiceNotFound = errors.New("service not found")

	// mutex protects access to the registry.
	mutex sync.RWMutex
	// registry maps registered service types to their registrations.
	registry = map[ServiceType]*Registration{}
	// order preserves registration order for deterministic iteration.
	order []ServiceType
)

// Registration binds a service factory to the dependency types it needs
// wired in at construction time.
type Registration struct {
	Type         ServiceType
	Factory      Factory
	Dependencies []ServiceType
}

// RegisterFactory adds a factory for the given service type. Registering a
// type twice silently replaces the previous factory; the last registration
// wins and the shadowing is only visible at debug level.
func RegisterFactory(service ServiceType, factory Factory, deps ...ServiceType) {
	mutex.Lock()
	defer mutex.Unlock()
	if _, ok := registry[service]; ok {
		logger.G().Debug("Replacing registered service factory", "service", service.String())
	} else {
		order = append(order, service)
	}
	registry[service] = &Registration{
		Type:         service,
		Factory:      factory,
		Dependencies: deps,
	}
}

// GetFactory retrieves a registration from the registry.
// It returns the registration and a boolean indicating whether it was found.
func GetFactory(service ServiceType) (*Registration, bool) {
	mutex.RLock()
	defer mutex.RUnlock()
	reg, exists := registry[service]
	return reg, exists
}

// Exists checks that every given service type has a registered factory.
// On the first miss it returns the missing type and false.
func Exists(service ...ServiceType) (*ServiceType, bool) {
	mutex.RLock()
	defer mutex.RUnlock()
	for _, v := range service {
		if _, exists := registry[v]; !exists {
			return &v, false
		}
	}
	return nil, true
}

// ListAvailableServices retrieves all registered service types in
// registration order.
func ListAvailableServices() []ServiceType {
	mutex.RLock()
	defer mutex.RUnlock()
	services := make([]ServiceType, len(order))
	copy(services, order)
	return services
}

// Remove removes a service from the registry.
func Remove(service ServiceType) {
	mutex.Lock()
	defer mutex.Unlock()
	if _, ok := registry[service]; !ok {
		return
	}
	delete(registry, service)
	for i, v := range order {
		if v == service {
			order = append(order[:i], order[i+1:]...)
			break
		}
	}
}
