package runtime

import (
	"testing"
	"time"

	"github.com/runlet/runlet/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceStateString(t *testing.T) {
	assert.Equal(t, "uninitialized", Uninitialized.String())
	assert.Equal(t, "started", Started.String())
	assert.Equal(t, "stopped", Stopped.String())
	assert.Equal(t, "unknown", ServiceState(99).String())
}

func TestServiceStateManagerSetGet(t *testing.T) {
	sm := NewServiceStateManager(logger.NewNoOpLogger(), nil)

	assert.Equal(t, Uninitialized, sm.GetState("state-a"))

	sm.SetState("state-a", Initializing)
	assert.Equal(t, Initializing, sm.GetState("state-a"))

	sm.SetState("state-a", Started)
	assert.Equal(t, Started, sm.GetState("state-a"))
}

func TestWaitForStateAlreadyReached(t *testing.T) {
	sm := NewServiceStateManager(logger.NewNoOpLogger(), nil)
	sm.SetState("state-ready", Started)

	require.NoError(t, sm.WaitForState("state-ready", Started, 10*time.Millisecond))
}

func TestWaitForStateSignaled(t *testing.T) {
	sm := NewServiceStateManager(logger.NewNoOpLogger(), nil)
	sm.SetState("state-late", Starting)

	go func() {
		time.Sleep(10 * time.Millisecond)
		sm.SetState("state-late", Started)
	}()

	require.NoError(t, sm.WaitForState("state-late", Started, time.Second))
	assert.Equal(t, Started, sm.GetState("state-late"))
}

func TestWaitForStateTimeout(t *testing.T) {
	sm := NewServiceStateManager(logger.NewNoOpLogger(), nil)
	sm.SetState("state-stuck", Starting)

	err := sm.WaitForState("state-stuck", Started, 20*time.Millisecond)
	require.Error(t, err)
}

func TestWaitForStateUnknownServiceTimesOut(t *testing.T) {
	sm := NewServiceStateManager(logger.NewNoOpLogger(), nil)

	err := sm.WaitForState("state-ghost", Started, 20*time.Millisecond)
	require.Error(t, err)
}
