package test

import (
	"context"
	"sync"

	"github.com/runlet/runlet/pkg/runtime"
)

var (
	// ServiceType defines the type of this service.
	ServiceType = runtime.TestServiceType

	// once ensures that the factory registration happens only once.
	once sync.Once
)

// ServiceFactory constructs the test service for the runtime.
func ServiceFactory(ctx context.Context, opts runtime.Options) (runtime.Service, error) {
	return NewService(ctx, opts.Logger, opts.Config)
}

func init() {
	once.Do(func() {
		runtime.RegisterFactory(ServiceType, ServiceFactory)
	})
}
