package runtime

import "github.com/pkg/errors"

// Run treats a service as a scoped resource: it starts the service, invokes
// fn, and stops the service on every exit path out of fn, including error
// returns and panics. When Start itself fails, fn does not run and Stop is
// not attempted.
func Run(svc Service, fn func(Service) error) (err error) {
	if startErr := svc.Start(); startErr != nil {
		return errors.Wrapf(startErr, "starting scoped service %s", svc.Type())
	}
	defer func() {
		if stopErr := svc.Stop(); stopErr != nil && err == nil {
			err = errors.Wrapf(stopErr, "stopping scoped service %s", svc.Type())
		}
	}()
	return fn(svc)
}
