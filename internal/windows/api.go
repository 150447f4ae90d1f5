//go:build windows

package windows

import (
	"iter"

	"golang.org/x/sys/windows"

	"github.com/Norgate-AV/cursormon/internal/display"
	"github.com/Norgate-AV/cursormon/internal/logger"
)

var (
	user32                       = windows.NewLazySystemDLL("user32.dll")
	procAttachThreadInput        = user32.NewProc("AttachThreadInput")
	procAllowSetForegroundWindow = user32.NewProc("AllowSetForegroundWindow")
	procGetWindowTextW           = user32.NewProc("GetWindowTextW")

	kernel32                  = windows.NewLazySystemDLL("kernel32.dll")
	procSetConsoleCtrlHandler = kernel32.NewProc("SetConsoleCtrlHandler")
)

const (
	// ASFW_ANY lets any process set the foreground window
	ASFW_ANY = 0xFFFFFFFF

	SW_SHOWNORMAL = 1
)

// DesktopOptions tunes the Win32 desktop implementation
type DesktopOptions struct {
	// VisibleOnly hides invisible top-level windows from enumeration
	VisibleOnly bool
}

// Desktop is a concrete implementation of interfaces.Desktop.
// It wraps a Client and the display topology reader.
type Desktop struct {
	client   *Client
	displays *display.ScreenReader
}

// NewDesktop creates a Desktop with the provided logger
func NewDesktop(log logger.LoggerInterface, opts DesktopOptions) *Desktop {
	return &Desktop{
		client:   NewClient(log, opts),
		displays: display.NewScreenReader(),
	}
}

// DisplayReader interface implementation
func (d *Desktop) Displays() ([]display.Region, error) {
	return d.displays.Displays()
}

// CursorController interface implementation
func (d *Desktop) CursorPos() (display.Point, bool) {
	return d.client.Cursor.Position()
}

func (d *Desktop) SetCursorPos(p display.Point) bool {
	return d.client.Cursor.MoveTo(p)
}

// WindowEnumerator interface implementation
func (d *Desktop) ForegroundWindow() uintptr {
	return d.client.Window.Foreground()
}

func (d *Desktop) TopLevelWindows() iter.Seq[uintptr] {
	return d.client.Window.TopLevel()
}

func (d *Desktop) WindowRect(hwnd uintptr) (display.Rect, bool) {
	return d.client.Window.Rect(hwnd)
}

// InputThreads interface implementation
func (d *Desktop) WindowThreadID(hwnd uintptr) uint32 {
	return d.client.Input.WindowThreadID(hwnd)
}

func (d *Desktop) CurrentThreadID() uint32 {
	return d.client.Input.CurrentThreadID()
}

func (d *Desktop) AttachThreadInput(from, to uint32, attach bool) bool {
	return d.client.Input.AttachThreadInput(from, to, attach)
}

func (d *Desktop) SetForegroundWindow(hwnd uintptr) bool {
	return d.client.Input.SetForegroundWindow(hwnd)
}

func (d *Desktop) AllowSetForegroundWindow() bool {
	return d.client.Input.AllowSetForegroundWindow()
}
