package runtime

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nopFactory(ctx context.Context, opts Options) (Service, error) {
	return nil, nil
}

func TestRegisterFactoryPreservesOrder(t *testing.T) {
	types := []ServiceType{"registry-a", "registry-b", "registry-c"}
	for _, typ := range types {
		typ := typ
		RegisterFactory(typ, nopFactory)
		t.Cleanup(func() { Remove(typ) })
	}

	listed := ListAvailableServices()
	positions := map[ServiceType]int{}
	for i, typ := range listed {
		positions[typ] = i
	}
	for _, typ := range types {
		_, ok := positions[typ]
		require.True(t, ok, "expected %s to be listed", typ)
	}
	assert.Less(t, positions["registry-a"], positions["registry-b"])
	assert.Less(t, positions["registry-b"], positions["registry-c"])
}

func TestRegisterFactoryLastWins(t *testing.T) {
	typ := ServiceType("registry-overwrite")
	t.Cleanup(func() { Remove(typ) })

	first := func(ctx context.Context, opts Options) (Service, error) {
		return &fakeService{typ: "first"}, nil
	}
	second := func(ctx context.Context, opts Options) (Service, error) {
		return &fakeService{typ: "second"}, nil
	}

	RegisterFactory(typ, first)
	RegisterFactory(typ, second)

	// Still exactly one entry, and it resolves through the later factory.
	count := 0
	for _, listed := range ListAvailableServices() {
		if listed == typ {
			count++
		}
	}
	assert.Equal(t, 1, count)

	reg, ok := GetFactory(typ)
	require.True(t, ok)
	svc, err := reg.Factory(context.Background(), Options{})
	require.NoError(t, err)
	assert.Equal(t, ServiceType("second"), svc.Type())
}

func TestExists(t *testing.T) {
	typ := ServiceType("registry-exists")
	RegisterFactory(typ, nopFactory)
	t.Cleanup(func() { Remove(typ) })

	missing, ok := Exists(typ)
	assert.True(t, ok)
	assert.Nil(t, missing)

	missing, ok = Exists(typ, "registry-absent")
	require.False(t, ok)
	require.NotNil(t, missing)
	assert.Equal(t, ServiceType("registry-absent"), *missing)
}

func TestRemove(t *testing.T) {
	typ := ServiceType("registry-remove")
	RegisterFactory(typ, nopFactory)
	Remove(typ)

	_, ok := GetFactory(typ)
	assert.False(t, ok)
	assert.NotContains(t, ListAvailableServices(), typ)

	// Removing twice is a no-op.
	Remove(typ)
}
