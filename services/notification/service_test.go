package notification_test

import (
	"context"
	"testing"

	"github.com/runlet/runlet/pkg/config"
	"github.com/runlet/runlet/pkg/logger"
	"github.com/runlet/runlet/pkg/runtime"
	"github.com/runlet/runlet/services/email"
	"github.com/runlet/runlet/services/notification"
	_ "github.com/runlet/runlet/services/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	server, err := config.NewServer("localhost", 8000)
	require.NoError(t, err)
	return &config.Config{Server: *server}
}

func indexOf(messages []string, want string) int {
	for i, msg := range messages {
		if msg == want {
			return i
		}
	}
	return -1
}

func countOf(messages []string, want string) int {
	n := 0
	for _, msg := range messages {
		if msg == want {
			n++
		}
	}
	return n
}

func TestRuntimeEndToEnd(t *testing.T) {
	rec := logger.NewRecorder()
	m := runtime.NewManager(context.Background(), testConfig(t), rec, nil)

	require.NoError(t, m.LoadServices())

	instances := m.Instances()
	require.Len(t, instances, 3)

	types := map[runtime.ServiceType]bool{}
	for _, instance := range instances {
		types[instance.Type()] = true
	}
	assert.True(t, types[runtime.TestServiceType])
	assert.True(t, types[runtime.EmailServiceType])
	assert.True(t, types[runtime.NotificationServiceType])

	require.NoError(t, m.StartAll())
	require.NoError(t, m.StopAll())

	messages := rec.Messages()

	// Both the manager-owned email instance and the notification-owned one
	// announce their transitions, once each.
	assert.Equal(t, 2, countOf(messages, "Connecting to SMTP..."))
	assert.Equal(t, 2, countOf(messages, "Closing SMTP..."))

	// The notification announcement precedes its dependency's startup
	// announcement; same for shutdown.
	notifStart := indexOf(messages, "Notification service running at localhost:8000")
	require.GreaterOrEqual(t, notifStart, 0)
	depConnect := indexOf(messages[notifStart:], "Connecting to SMTP...")
	assert.Greater(t, depConnect, 0)

	notifStop := indexOf(messages, "Notification service stopping...")
	require.GreaterOrEqual(t, notifStop, 0)
	depClose := indexOf(messages[notifStop:], "Closing SMTP...")
	assert.Greater(t, depClose, 0)

	// Every instance sees exactly one start before its one stop.
	assert.Less(t,
		indexOf(messages, "TestService is starting up..."),
		indexOf(messages, "TestService is shutting down..."),
	)
	assert.Equal(t, 1, countOf(messages, "TestService is starting up..."))
	assert.Equal(t, 1, countOf(messages, "TestService is shutting down..."))
}

func TestNotificationDependencyIsFreshInstance(t *testing.T) {
	m := runtime.NewManager(context.Background(), testConfig(t), logger.NewNoOpLogger(), nil)
	require.NoError(t, m.LoadServices())

	var managerEmail runtime.Service
	var notif *notification.Service
	for _, instance := range m.Instances() {
		switch instance.Type() {
		case runtime.EmailServiceType:
			managerEmail = instance
		case runtime.NotificationServiceType:
			notif = instance.(*notification.Service)
		}
	}
	require.NotNil(t, managerEmail)
	require.NotNil(t, notif)

	injected := notif.EmailService()
	require.NotNil(t, injected)
	assert.Equal(t, runtime.EmailServiceType, injected.Type())
	assert.NotSame(t, managerEmail, injected)
	assert.Equal(t, []runtime.ServiceType{runtime.EmailServiceType}, notif.Dependencies())
}

func TestGetServiceConstructsIndependentInstances(t *testing.T) {
	rec := logger.NewRecorder()
	m := runtime.NewManager(context.Background(), testConfig(t), rec, nil)

	svc, err := m.GetService(runtime.EmailServiceType)
	require.NoError(t, err)
	require.IsType(t, &email.Service{}, svc)

	require.NoError(t, svc.Start())
	require.NoError(t, svc.Stop())
	assert.Equal(t, 1, countOf(rec.Messages(), "Connecting to SMTP..."))
	assert.Equal(t, 1, countOf(rec.Messages(), "Closing SMTP..."))

	_, err = m.GetService("no-such-service")
	require.Error(t, err)
	assert.ErrorIs(t, err, runtime.ErrServiceNotFound)
}

func TestNotificationScopedRun(t *testing.T) {
	rec := logger.NewRecorder()
	m := runtime.NewManager(context.Background(), testConfig(t), rec, nil)

	svc, err := m.GetService(runtime.NotificationServiceType)
	require.NoError(t, err)

	err = runtime.Run(svc, func(s runtime.Service) error {
		rec.Info("inside scope")
		return nil
	})
	require.NoError(t, err)

	messages := rec.Messages()
	assert.Less(t,
		indexOf(messages, "Notification service running at localhost:8000"),
		indexOf(messages, "inside scope"),
	)
	assert.Less(t,
		indexOf(messages, "inside scope"),
		indexOf(messages, "Notification service stopping..."),
	)
}
