package notification

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/runlet/runlet/pkg/runtime"
)

var (
	// ServiceType defines the type of this service.
	ServiceType = runtime.NotificationServiceType

	// once ensures that the factory registration happens only once.
	once sync.Once
)

// ServiceFactory constructs the notification service for the runtime. The
// runtime wires in a freshly constructed email service instance, declared as
// a dependency at registration time below.
func ServiceFactory(ctx context.Context, opts runtime.Options) (runtime.Service, error) {
	emailService, ok := opts.Dependencies[runtime.EmailServiceType]
	if !ok {
		return nil, errors.Wrapf(runtime.ErrServiceNotFound, "notification service requires dependency %s", runtime.EmailServiceType)
	}
	return NewService(ctx, opts.Logger, opts.Config, emailService)
}

func init() {
	once.Do(func() {
		runtime.RegisterFactory(ServiceType, ServiceFactory, runtime.EmailServiceType)
	})
}
