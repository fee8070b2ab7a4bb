package shutdown

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/runlet/runlet/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallbacksRunOnceInOrder(t *testing.T) {
	sm := NewManager(context.Background(), logger.NewNoOpLogger())

	var order []string
	sm.AddShutdownCallback(func() error {
		order = append(order, "first")
		return nil
	})
	sm.AddShutdownCallback(func() error {
		order = append(order, "second")
		return nil
	})

	sm.Start()
	sm.Trigger()
	sm.Wait()

	assert.Equal(t, []string{"first", "second"}, order)

	// A second trigger must not run the callbacks again.
	sm.Trigger()
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestFailingCallbackDoesNotAbortTheRest(t *testing.T) {
	rec := logger.NewRecorder()
	sm := NewManager(context.Background(), rec)

	var ran []string
	sm.AddShutdownCallback(func() error {
		ran = append(ran, "broken")
		return errors.New("drain failed")
	})
	sm.AddShutdownCallback(func() error {
		ran = append(ran, "healthy")
		return nil
	})

	sm.Start()
	sm.Trigger()
	sm.Wait()

	assert.Equal(t, []string{"broken", "healthy"}, ran)
	assert.Contains(t, rec.Messages(), "Shutdown callback failed")
}

func TestParentContextCancellationShutsDown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sm := NewManager(ctx, logger.NewNoOpLogger())

	done := make(chan struct{})
	sm.AddShutdownCallback(func() error {
		close(done)
		return nil
	})

	sm.Start()
	cancel()
	sm.Wait()

	select {
	case <-done:
	default:
		t.Fatal("shutdown callback did not run after parent cancellation")
	}

	require.Error(t, sm.Context().Err())
}
