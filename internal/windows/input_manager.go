//go:build windows

package windows

import (
	"log/slog"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/Norgate-AV/cursormon/internal/logger"
)

// inputManager wraps the thread-input and foreground primitives
type inputManager struct {
	log logger.LoggerInterface
}

// newInputManager creates a new input manager
func newInputManager(log logger.LoggerInterface) *inputManager {
	return &inputManager{log: log}
}

// WindowThreadID returns the thread that owns hwnd, or 0 for a stale handle
func (m *inputManager) WindowThreadID(hwnd uintptr) uint32 {
	tid, err := windows.GetWindowThreadProcessId(windows.HWND(hwnd), nil)
	if err != nil {
		m.log.Trace("GetWindowThreadProcessId failed",
			slog.Uint64("hwnd", uint64(hwnd)),
			slog.Any("error", err))
		return 0
	}

	return tid
}

func (m *inputManager) CurrentThreadID() uint32 {
	return windows.GetCurrentThreadId()
}

// AttachThreadInput joins or separates the input queues of two threads
func (m *inputManager) AttachThreadInput(from, to uint32, attach bool) bool {
	var flag uintptr
	if attach {
		flag = 1
	}

	ret, _, err := procAttachThreadInput.Call(uintptr(from), uintptr(to), flag)
	if ret == 0 {
		m.log.Debug("AttachThreadInput failed",
			slog.Uint64("from", uint64(from)),
			slog.Uint64("to", uint64(to)),
			slog.Bool("attach", attach),
			slog.Any("error", err))
		return false
	}

	return true
}

// SetForegroundWindow asks the system to activate hwnd
func (m *inputManager) SetForegroundWindow(hwnd uintptr) bool {
	if win.SetForegroundWindow(win.HWND(hwnd)) {
		return true
	}

	m.log.Debug("SetForegroundWindow refused",
		slog.Uint64("hwnd", uint64(hwnd)),
		slog.String("window", describeWindow(hwnd).String()))

	return false
}

// AllowSetForegroundWindow lets any process take the foreground next
func (m *inputManager) AllowSetForegroundWindow() bool {
	ret, _, err := procAllowSetForegroundWindow.Call(uintptr(ASFW_ANY))
	if ret == 0 {
		m.log.Trace("AllowSetForegroundWindow failed", slog.Any("error", err))
		return false
	}

	return true
}
