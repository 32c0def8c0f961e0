package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hexlattice/graphbridge/errors"
	"github.com/hexlattice/graphbridge/resource"
)

// Lifecycle transitions are tested on a private instance; the package
// singleton follows the exact same state machine.

func TestLifecycle_InitializeIdempotent(t *testing.T) {
	var l lifecycle

	require.False(t, l.running())
	require.Nil(t, l.handleTable())

	require.NoError(t, l.initialize(nil))
	require.True(t, l.running())
	require.NotNil(t, l.handleTable())

	table := l.handleTable()
	require.NoError(t, l.initialize(&Config{HandleCapacity: 128}))
	require.Same(t, table, l.handleTable(), "second initialize must be a no-op")
}

func TestLifecycle_ShutdownIsTerminal(t *testing.T) {
	var l lifecycle

	err := l.shutdown()
	require.Equal(t, errors.StatusError, errors.StatusOf(err), "shutdown before init must fail")

	require.NoError(t, l.initialize(nil))
	require.NoError(t, l.shutdown())
	require.False(t, l.running())
	require.Nil(t, l.handleTable())

	err = l.initialize(nil)
	require.Equal(t, errors.StatusUnsupportedOperation, errors.StatusOf(err), "no reinit after shutdown")

	err = l.shutdown()
	require.Equal(t, errors.StatusError, errors.StatusOf(err))
}

func TestLifecycle_ShutdownReleasesHandles(t *testing.T) {
	var l lifecycle
	require.NoError(t, l.initialize(nil))

	h, err := l.handleTable().Insert(resource.KindGraph, NewGraph(false, false, false, false))
	require.NoError(t, err)
	require.NotZero(t, h)

	table := l.handleTable()
	require.NoError(t, l.shutdown())

	_, _, ok := table.Get(h)
	require.False(t, ok, "handles must not survive shutdown")
}
