package hotkey_test

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xhotkey "golang.design/x/hotkey"

	"github.com/Norgate-AV/cursormon/internal/hotkey"
	"github.com/Norgate-AV/cursormon/internal/hotkey/hotkeytest"
	"github.com/Norgate-AV/cursormon/internal/logger"
)

func newTestListener(t *testing.T, handler func()) (*hotkey.Listener, *hotkeytest.MockBindings) {
	t.Helper()

	bindings := &hotkeytest.MockBindings{}
	l := hotkey.NewListenerWithBinding(func() hotkey.Binding { return bindings.New() }, handler, logger.NewNoOpLogger())
	t.Cleanup(func() { _ = l.Stop() })

	return l, bindings
}

func TestListener_StartDispatchesPresses(t *testing.T) {
	t.Parallel()

	var fired atomic.Int32
	l, bindings := newTestListener(t, func() { fired.Add(1) })

	require.NoError(t, l.Start())
	assert.True(t, l.Active())
	require.Equal(t, 1, bindings.Len())
	assert.True(t, bindings.Last().Registered())

	bindings.Last().Press()
	bindings.Last().Press()

	assert.Eventually(t, func() bool { return fired.Load() == 2 }, time.Second, 5*time.Millisecond)
}

func TestListener_StartTwiceIsRejected(t *testing.T) {
	t.Parallel()

	l, bindings := newTestListener(t, func() {})

	require.NoError(t, l.Start())
	err := l.Start()

	require.ErrorIs(t, err, hotkey.ErrAlreadyActive)
	assert.Equal(t, 1, bindings.Len(), "A second binding must not be created")
}

func TestListener_RegisterFailure(t *testing.T) {
	t.Parallel()

	osErr := errors.New("hotkey already taken")
	l, bindings := newTestListener(t, func() {})
	bindings.Err = osErr

	err := l.Start()

	require.Error(t, err)
	assert.ErrorIs(t, err, hotkey.ErrRegister)
	assert.ErrorIs(t, err, osErr)
	assert.Contains(t, err.Error(), hotkey.Chord)
	assert.False(t, l.Active())
}

func TestListener_StopUnregisters(t *testing.T) {
	t.Parallel()

	var fired atomic.Int32
	l, bindings := newTestListener(t, func() { fired.Add(1) })

	require.NoError(t, l.Start())
	require.NoError(t, l.Stop())

	assert.False(t, l.Active())
	assert.False(t, bindings.Last().Registered())

	select {
	case bindings.Last().Keys() <- xhotkey.Event{}:
		t.Fatal("Dispatcher should have exited after Stop")
	case <-time.After(20 * time.Millisecond):
	}

	assert.Zero(t, fired.Load())
}

func TestListener_StopWhenInactive(t *testing.T) {
	t.Parallel()

	l, bindings := newTestListener(t, func() {})

	assert.NoError(t, l.Stop())
	assert.Zero(t, bindings.Len())
}

func TestListener_RestartUsesFreshBinding(t *testing.T) {
	t.Parallel()

	var fired atomic.Int32
	l, bindings := newTestListener(t, func() { fired.Add(1) })

	require.NoError(t, l.Start())
	first := bindings.Last()
	require.NoError(t, l.Stop())
	require.NoError(t, l.Start())

	require.Equal(t, 2, bindings.Len())
	assert.False(t, first.Registered())
	assert.True(t, bindings.Last().Registered())

	bindings.Last().Press()
	assert.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestListener_UnregisterError(t *testing.T) {
	t.Parallel()

	l, bindings := newTestListener(t, func() {})

	require.NoError(t, l.Start())
	bindings.Last().WithUnregisterError(errors.New("not registered"))

	err := l.Stop()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unregister hotkey")
	assert.False(t, l.Active(), "Listener is inactive even if the OS call failed")
}

func TestListener_HandlerPanicDoesNotStopDispatch(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	l, bindings := newTestListener(t, func() {
		if calls.Add(1) == 1 {
			panic("first press blows up")
		}
	})

	require.NoError(t, l.Start())

	bindings.Last().Press()
	bindings.Last().Press()

	assert.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, 5*time.Millisecond)
	assert.True(t, l.Active())
}
