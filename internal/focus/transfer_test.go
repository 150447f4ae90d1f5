package focus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Norgate-AV/cursormon/internal/display"
	"github.com/Norgate-AV/cursormon/internal/focus"
	"github.com/Norgate-AV/cursormon/internal/logger"
	"github.com/Norgate-AV/cursormon/internal/testutil"
)

func TestTransferFocus_AttachesForeignThread(t *testing.T) {
	t.Parallel()

	desktop := testutil.NewMockDesktop().
		WithCurrentThread(1).
		WithWindow(0x10, display.RectFromSize(0, 0, 100, 100), 7)

	ok := focus.NewTransferrer(desktop, logger.NewNoOpLogger()).TransferFocus(0x10)

	assert.True(t, ok)
	assert.Equal(t, uintptr(0x10), desktop.Foreground)
	assert.Equal(t, []testutil.AttachCall{
		{From: 1, To: 7, Attach: true},
		{From: 1, To: 7, Attach: false},
	}, desktop.AttachCalls)
	assert.Equal(t, []string{
		"WindowThreadID",
		"CurrentThreadID",
		"AttachThreadInput",
		"SetForegroundWindow",
		"AttachThreadInput",
		"AllowSetForegroundWindow",
	}, desktop.Calls)
}

func TestTransferFocus_SameThreadSkipsAttach(t *testing.T) {
	t.Parallel()

	desktop := testutil.NewMockDesktop().
		WithCurrentThread(7).
		WithWindow(0x10, display.RectFromSize(0, 0, 100, 100), 7)

	ok := focus.NewTransferrer(desktop, logger.NewNoOpLogger()).TransferFocus(0x10)

	assert.True(t, ok)
	assert.Empty(t, desktop.AttachCalls)
	assert.Equal(t, []uintptr{0x10}, desktop.SetForegroundCalls)
	assert.Equal(t, 1, desktop.AllowSetForegroundCalls)
}

func TestTransferFocus_DetachesWhenSetForegroundFails(t *testing.T) {
	t.Parallel()

	desktop := testutil.NewMockDesktop().
		WithWindow(0x10, display.RectFromSize(0, 0, 100, 100), 7).
		WithSetForegroundResult(false)

	ok := focus.NewTransferrer(desktop, logger.NewNoOpLogger()).TransferFocus(0x10)

	assert.False(t, ok)
	assert.Len(t, desktop.AttachCalls, 2)
	assert.False(t, desktop.AttachCalls[1].Attach, "Detach must follow a failed SetForegroundWindow")
	assert.Equal(t, 1, desktop.AllowSetForegroundCalls)
}

func TestTransferFocus_DetachesWhenSetForegroundPanics(t *testing.T) {
	t.Parallel()

	desktop := testutil.NewMockDesktop().
		WithWindow(0x10, display.RectFromSize(0, 0, 100, 100), 7).
		WithPanic("SetForegroundWindow")

	assert.Panics(t, func() {
		focus.NewTransferrer(desktop, logger.NewNoOpLogger()).TransferFocus(0x10)
	})

	assert.Len(t, desktop.AttachCalls, 2)
	assert.False(t, desktop.AttachCalls[1].Attach)
}

func TestTransferFocus_AttachFailureStillAttemptsAndDetaches(t *testing.T) {
	t.Parallel()

	desktop := testutil.NewMockDesktop().
		WithWindow(0x10, display.RectFromSize(0, 0, 100, 100), 7).
		WithAttachResult(false)

	focus.NewTransferrer(desktop, logger.NewNoOpLogger()).TransferFocus(0x10)

	assert.Equal(t, []uintptr{0x10}, desktop.SetForegroundCalls)
	assert.Len(t, desktop.AttachCalls, 2)
}

func TestTransferFocus_StaleHandle(t *testing.T) {
	t.Parallel()

	desktop := testutil.NewMockDesktop().
		WithWindow(0x10, display.RectFromSize(0, 0, 100, 100), 7)
	desktop.CloseWindow(0x10)

	ok := focus.NewTransferrer(desktop, logger.NewNoOpLogger()).TransferFocus(0x10)

	assert.False(t, ok)
	assert.Empty(t, desktop.SetForegroundCalls)
	assert.Empty(t, desktop.AttachCalls)
	assert.Equal(t, 1, desktop.AllowSetForegroundCalls, "AllowSetForegroundWindow is issued on every attempt")
}

func TestTransferFocus_AllowFailureIsNotAnError(t *testing.T) {
	t.Parallel()

	desktop := testutil.NewMockDesktop().
		WithWindow(0x10, display.RectFromSize(0, 0, 100, 100), 7).
		WithAllowSetForegroundResult(false)

	assert.True(t, focus.NewTransferrer(desktop, logger.NewNoOpLogger()).TransferFocus(0x10))
}

// migratingThreads reports a different current thread on every read, as a
// goroutine hopping between OS threads would
type migratingThreads struct {
	*testutil.MockDesktop
	next uint32
}

func (m *migratingThreads) CurrentThreadID() uint32 {
	m.next++
	return m.MockDesktop.CurrentThreadID() + m.next - 1
}

func TestTransferFocus_AttachAndDetachUseObservedThread(t *testing.T) {
	t.Parallel()

	desktop := testutil.NewMockDesktop().
		WithCurrentThread(3).
		WithWindow(0x10, display.RectFromSize(0, 0, 100, 100), 7)
	threads := &migratingThreads{MockDesktop: desktop}

	ok := focus.NewTransferrer(threads, logger.NewNoOpLogger()).TransferFocus(0x10)

	assert.True(t, ok)
	assert.Equal(t, uint32(1), threads.next, "Current thread is read once per transfer")
	assert.Equal(t, []testutil.AttachCall{
		{From: 3, To: 7, Attach: true},
		{From: 3, To: 7, Attach: false},
	}, desktop.AttachCalls)
}
