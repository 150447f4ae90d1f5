// Package interfaces defines core interfaces for dependency injection and testing.
package interfaces

import (
	"iter"

	"github.com/Norgate-AV/cursormon/internal/display"
)

// DisplayReader lists the current display layout
type DisplayReader interface {
	Displays() ([]display.Region, error)
}

// CursorController reads and moves the mouse cursor
type CursorController interface {
	CursorPos() (display.Point, bool)
	SetCursorPos(p display.Point) bool
}

// WindowEnumerator exposes top-level windows and their geometry.
// Window handles are opaque and may go stale at any time.
type WindowEnumerator interface {
	ForegroundWindow() uintptr
	// TopLevelWindows yields windows front to back and stops as soon as
	// the consumer stops ranging.
	TopLevelWindows() iter.Seq[uintptr]
	WindowRect(hwnd uintptr) (display.Rect, bool)
}

// InputThreads holds the primitives needed to move keyboard focus to a
// window owned by another process.
type InputThreads interface {
	WindowThreadID(hwnd uintptr) uint32
	CurrentThreadID() uint32
	AttachThreadInput(from, to uint32, attach bool) bool
	SetForegroundWindow(hwnd uintptr) bool
	AllowSetForegroundWindow() bool
}

// Desktop is everything the transfer engine needs from the OS
type Desktop interface {
	DisplayReader
	CursorController
	WindowEnumerator
	InputThreads
}

// Notifier surfaces a message to the user outside of the log
type Notifier interface {
	Notify(title, message string)
	NotifyError(title, message string)
}
