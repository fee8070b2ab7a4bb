package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/runlet/runlet/pkg/logger"
)

// Manager handles graceful shutdown of the application. Registered callbacks
// run exactly once, in registration order, when a shutdown signal arrives or
// the parent context is canceled.
type Manager struct {
	ctx       context.Context
	cancel    context.CancelFunc
	logger    logger.Logger
	wg        sync.WaitGroup
	signals   []os.Signal
	once      sync.Once
	callbacks []func() error
	mu        sync.Mutex
}

// NewManager creates a new Manager.
// It accepts a parent context, a logger, and optional OS signals to listen for.
func NewManager(ctx context.Context, logger logger.Logger, signals ...os.Signal) *Manager {
	ctx, cancel := context.WithCancel(ctx)
	if len(signals) == 0 {
		signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}
	}
	return &Manager{
		ctx:     ctx,
		cancel:  cancel,
		logger:  logger,
		signals: signals,
	}
}

// Context returns the context associated with the Manager.
func (sm *Manager) Context() context.Context {
	return sm.ctx
}

// AddShutdownCallback registers a callback function to be called during shutdown.
func (sm *Manager) AddShutdownCallback(callback func() error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.callbacks = append(sm.callbacks, callback)
}

// Start begins listening for OS signals to initiate shutdown.
func (sm *Manager) Start() {
	sm.wg.Add(1)
	go sm.handleSignals()
}

// Trigger initiates the shutdown sequence without waiting for a signal.
func (sm *Manager) Trigger() {
	sm.cancel()
}

// handleSignals listens for OS signals and initiates shutdown when received.
func (sm *Manager) handleSignals() {
	defer sm.wg.Done()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, sm.signals...)
	defer signal.Stop(sigChan)

	select {
	case sig := <-sigChan:
		sm.logger.Info("Received shutdown signal", "signal", sig.String())
		sm.shutdown()
	case <-sm.ctx.Done():
		sm.logger.Info("Context canceled, shutting down")
		sm.shutdown()
	}
}

// shutdown performs the actual shutdown sequence, ensuring it's only executed once.
func (sm *Manager) shutdown() {
	sm.once.Do(func() {
		sm.cancel()
		sm.mu.Lock()
		defer sm.mu.Unlock()
		for _, callback := range sm.callbacks {
			if err := callback(); err != nil {
				sm.logger.Error("Shutdown callback failed", "error", err)
			}
		}
	})
}

// Wait blocks until the shutdown sequence is complete.
func (sm *Manager) Wait() {
	sm.wg.Wait()
}
