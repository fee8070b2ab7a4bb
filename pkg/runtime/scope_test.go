package runtime

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStopsAfterBody(t *testing.T) {
	var journal []string
	svc := &fakeService{typ: "scope-ok", journal: &journal}

	err := Run(svc, func(s Service) error {
		journal = append(journal, "body")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"scope-ok:start", "body", "scope-ok:stop"}, journal)
}

func TestRunStopsOnBodyError(t *testing.T) {
	var journal []string
	svc := &fakeService{typ: "scope-fail", journal: &journal}
	boom := errors.New("body failed")

	err := Run(svc, func(s Service) error {
		return boom
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	// Stop runs on the failure path too.
	assert.Equal(t, []string{"scope-fail:start", "scope-fail:stop"}, journal)
}

func TestRunStopsOnPanic(t *testing.T) {
	var journal []string
	svc := &fakeService{typ: "scope-panic", journal: &journal}

	assert.Panics(t, func() {
		_ = Run(svc, func(s Service) error {
			panic("kaboom")
		})
	})
	assert.Equal(t, []string{"scope-panic:start", "scope-panic:stop"}, journal)
}

func TestRunSkipsStopWhenStartFails(t *testing.T) {
	var journal []string
	boom := errors.New("start failed")
	svc := &fakeService{typ: "scope-nostart", journal: &journal, startErr: boom}

	bodyRan := false
	err := Run(svc, func(s Service) error {
		bodyRan = true
		return nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.False(t, bodyRan)
	assert.Empty(t, journal)
}
