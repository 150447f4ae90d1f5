//go:build windows

package windows

import (
	"iter"
	"log/slog"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/Norgate-AV/cursormon/internal/display"
	"github.com/Norgate-AV/cursormon/internal/logger"
)

// windowManager answers questions about top-level windows
type windowManager struct {
	log         logger.LoggerInterface
	visibleOnly bool
}

// newWindowManager creates a new window manager
func newWindowManager(log logger.LoggerInterface, visibleOnly bool) *windowManager {
	return &windowManager{log: log, visibleOnly: visibleOnly}
}

// Foreground returns the current foreground window, or 0 if there is none
func (w *windowManager) Foreground() uintptr {
	return uintptr(windows.GetForegroundWindow())
}

// TopLevel yields top-level windows in z-order, topmost first
func (w *windowManager) TopLevel() iter.Seq[uintptr] {
	return func(yield func(uintptr) bool) {
		if !w.visibleOnly {
			enumTopLevel(yield)
			return
		}

		enumTopLevel(func(hwnd uintptr) bool {
			if !IsWindowVisible(hwnd) {
				return true
			}

			return yield(hwnd)
		})
	}
}

// Rect returns the window's outer rectangle in virtual-desktop coordinates
func (w *windowManager) Rect(hwnd uintptr) (display.Rect, bool) {
	var r win.RECT

	if !win.GetWindowRect(win.HWND(hwnd), &r) {
		w.log.Trace("GetWindowRect failed", slog.Uint64("hwnd", uint64(hwnd)))
		return display.Rect{}, false
	}

	return display.Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}, true
}
