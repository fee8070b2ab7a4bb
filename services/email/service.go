package email

import (
	"context"

	"github.com/runlet/runlet/pkg/config"
	"github.com/runlet/runlet/pkg/logger"
	"github.com/runlet/runlet/pkg/runtime"
)

// Service simulates an SMTP-backed mail delivery service. There is no real
// SMTP connection behind it; the hooks only announce the transitions.
type Service struct {
	ctx    context.Context
	cfg    *config.Config
	logger logger.Logger
}

func NewService(ctx context.Context, logger logger.Logger, cfg *config.Config) (*Service, error) {
	return &Service{
		ctx:    ctx,
		cfg:    cfg,
		logger: logger,
	}, nil
}

func (s *Service) Type() runtime.ServiceType {
	return ServiceType
}

func (s *Service) Start() error {
	return runtime.StartService(s, s.logger)
}

func (s *Service) Stop() error {
	return runtime.StopService(s, s.logger)
}

func (s *Service) OnStartup() error {
	s.logger.Info("Connecting to SMTP...")
	return nil
}

func (s *Service) OnShutdown() error {
	s.logger.Info("Closing SMTP...")
	return nil
}
