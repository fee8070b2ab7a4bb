package notification

import (
	"context"
	"fmt"

	"github.com/runlet/runlet/pkg/config"
	"github.com/runlet/runlet/pkg/logger"
	"github.com/runlet/runlet/pkg/runtime"
)

// Service dispatches notifications through an injected email service. The
// injected instance is owned by this service: it is started and stopped from
// the hooks here, independently of the email instance the manager drives
// through its own list.
type Service struct {
	ctx          context.Context
	cfg          *config.Config
	logger       logger.Logger
	emailService runtime.Service
}

func NewService(ctx context.Context, logger logger.Logger, cfg *config.Config, emailService runtime.Service) (*Service, error) {
	return &Service{
		ctx:          ctx,
		cfg:          cfg,
		logger:       logger,
		emailService: emailService,
	}, nil
}

func (s *Service) Type() runtime.ServiceType {
	return ServiceType
}

// Dependencies reports the service types that must be wired in before this
// service can be constructed.
func (s *Service) Dependencies() []runtime.ServiceType {
	return []runtime.ServiceType{runtime.EmailServiceType}
}

// EmailService returns the injected email dependency.
func (s *Service) EmailService() runtime.Service {
	return s.emailService
}

func (s *Service) Start() error {
	return runtime.StartService(s, s.logger)
}

func (s *Service) Stop() error {
	return runtime.StopService(s, s.logger)
}

func (s *Service) OnStartup() error {
	s.logger.Info(fmt.Sprintf("Notification service running at %s", s.cfg.Server.Addr()))
	return s.emailService.Start()
}

func (s *Service) OnShutdown() error {
	s.logger.Info("Notification service stopping...")
	return s.emailService.Stop()
}
