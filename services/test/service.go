package test

import (
	"context"

	"github.com/runlet/runlet/pkg/config"
	"github.com/runlet/runlet/pkg/logger"
	"github.com/runlet/runlet/pkg/runtime"
)

// Service is a throwaway service used to exercise the lifecycle machinery.
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
	s.logger.Info("TestService is starting up...")
	return nil
}

func (s *Service) OnShutdown() error {
	s.logger.Info("TestService is shutting down...")
	return nil
}
