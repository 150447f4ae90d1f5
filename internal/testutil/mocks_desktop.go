package testutil

import (
	"fmt"
	"iter"

	"github.com/Norgate-AV/cursormon/internal/display"
)

// MockWindow is a top-level window known to MockDesktop
type MockWindow struct {
	Hwnd   uintptr
	Rect   display.Rect
	Thread uint32
	Closed bool
}

type AttachCall struct {
	From   uint32
	To     uint32
	Attach bool
}

// MockDesktop implements interfaces.Desktop in memory and records calls.
// Windows are kept in z-order, front first.
type MockDesktop struct {
	DisplaysResult []display.Region
	DisplaysErr    error
	DisplaysCalls  int

	Cursor          display.Point
	CursorOK        bool
	SetCursorResult bool
	SetCursorCalls  []display.Point

	Foreground        uintptr
	Windows           []*MockWindow
	EnumeratedWindows []uintptr

	CurrentThread            uint32
	AttachResult             bool
	AttachCalls              []AttachCall
	SetForegroundResult      bool
	SetForegroundCalls       []uintptr
	AllowSetForegroundResult bool
	AllowSetForegroundCalls  int
	WindowThreadIDCalls      []uintptr

	// Calls is the ordered list of method names invoked
	Calls []string

	panics map[string]bool
}

func NewMockDesktop() *MockDesktop {
	return &MockDesktop{
		CursorOK:                 true,
		SetCursorResult:          true,
		CurrentThread:            1,
		AttachResult:             true,
		SetForegroundResult:      true,
		AllowSetForegroundResult: true,
		panics:                   make(map[string]bool),
	}
}

func (m *MockDesktop) record(method string) {
	m.Calls = append(m.Calls, method)

	if m.panics[method] {
		panic(fmt.Sprintf("mock fault in %s", method))
	}
}

func (m *MockDesktop) Displays() ([]display.Region, error) {
	m.record("Displays")
	m.DisplaysCalls++

	if m.DisplaysErr != nil {
		return nil, m.DisplaysErr
	}

	return m.DisplaysResult, nil
}

func (m *MockDesktop) CursorPos() (display.Point, bool) {
	m.record("CursorPos")
	return m.Cursor, m.CursorOK
}

func (m *MockDesktop) SetCursorPos(p display.Point) bool {
	m.record("SetCursorPos")
	m.SetCursorCalls = append(m.SetCursorCalls, p)

	if m.SetCursorResult {
		m.Cursor = p
	}

	return m.SetCursorResult
}

func (m *MockDesktop) ForegroundWindow() uintptr {
	m.record("ForegroundWindow")
	return m.Foreground
}

func (m *MockDesktop) TopLevelWindows() iter.Seq[uintptr] {
	m.record("TopLevelWindows")

	return func(yield func(uintptr) bool) {
		for _, w := range m.Windows {
			if w.Closed {
				continue
			}

			m.EnumeratedWindows = append(m.EnumeratedWindows, w.Hwnd)

			if !yield(w.Hwnd) {
				return
			}
		}
	}
}

func (m *MockDesktop) WindowRect(hwnd uintptr) (display.Rect, bool) {
	m.record("WindowRect")

	w := m.window(hwnd)
	if w == nil {
		return display.Rect{}, false
	}

	return w.Rect, true
}

func (m *MockDesktop) WindowThreadID(hwnd uintptr) uint32 {
	m.record("WindowThreadID")
	m.WindowThreadIDCalls = append(m.WindowThreadIDCalls, hwnd)

	w := m.window(hwnd)
	if w == nil {
		return 0
	}

	return w.Thread
}

func (m *MockDesktop) CurrentThreadID() uint32 {
	m.record("CurrentThreadID")
	return m.CurrentThread
}

func (m *MockDesktop) AttachThreadInput(from, to uint32, attach bool) bool {
	m.record("AttachThreadInput")
	m.AttachCalls = append(m.AttachCalls, AttachCall{From: from, To: to, Attach: attach})
	return m.AttachResult
}

func (m *MockDesktop) SetForegroundWindow(hwnd uintptr) bool {
	m.record("SetForegroundWindow")
	m.SetForegroundCalls = append(m.SetForegroundCalls, hwnd)

	if !m.SetForegroundResult || m.window(hwnd) == nil {
		return false
	}

	m.Foreground = hwnd
	return true
}

func (m *MockDesktop) AllowSetForegroundWindow() bool {
	m.record("AllowSetForegroundWindow")
	m.AllowSetForegroundCalls++
	return m.AllowSetForegroundResult
}

// window returns the open window with the handle, or nil
func (m *MockDesktop) window(hwnd uintptr) *MockWindow {
	for _, w := range m.Windows {
		if w.Hwnd == hwnd && !w.Closed {
			return w
		}
	}

	return nil
}

// CloseWindow marks a window as destroyed so its handle goes stale
func (m *MockDesktop) CloseWindow(hwnd uintptr) {
	if w := m.window(hwnd); w != nil {
		w.Closed = true
	}

	if m.Foreground == hwnd {
		m.Foreground = 0
	}
}

// Helper methods for fluent configuration
func (m *MockDesktop) WithDisplays(displays ...display.Region) *MockDesktop {
	m.DisplaysResult = displays
	return m
}

func (m *MockDesktop) WithDisplaysError(err error) *MockDesktop {
	m.DisplaysErr = err
	return m
}

func (m *MockDesktop) WithCursor(x, y int32) *MockDesktop {
	m.Cursor = display.Point{X: x, Y: y}
	return m
}

func (m *MockDesktop) WithCursorUnavailable() *MockDesktop {
	m.CursorOK = false
	return m
}

func (m *MockDesktop) WithSetCursorResult(result bool) *MockDesktop {
	m.SetCursorResult = result
	return m
}

// WithWindow appends a window behind all windows added so far
func (m *MockDesktop) WithWindow(hwnd uintptr, rect display.Rect, thread uint32) *MockDesktop {
	m.Windows = append(m.Windows, &MockWindow{Hwnd: hwnd, Rect: rect, Thread: thread})
	return m
}

func (m *MockDesktop) WithForeground(hwnd uintptr) *MockDesktop {
	m.Foreground = hwnd
	return m
}

func (m *MockDesktop) WithCurrentThread(id uint32) *MockDesktop {
	m.CurrentThread = id
	return m
}

func (m *MockDesktop) WithAttachResult(result bool) *MockDesktop {
	m.AttachResult = result
	return m
}

func (m *MockDesktop) WithSetForegroundResult(result bool) *MockDesktop {
	m.SetForegroundResult = result
	return m
}

func (m *MockDesktop) WithAllowSetForegroundResult(result bool) *MockDesktop {
	m.AllowSetForegroundResult = result
	return m
}

// WithPanic makes the named method panic, simulating a faulting OS call
func (m *MockDesktop) WithPanic(method string) *MockDesktop {
	m.panics[method] = true
	return m
}

// ResetCalls clears recorded calls while keeping configuration
func (m *MockDesktop) ResetCalls() {
	m.DisplaysCalls = 0
	m.SetCursorCalls = nil
	m.EnumeratedWindows = nil
	m.AttachCalls = nil
	m.SetForegroundCalls = nil
	m.AllowSetForegroundCalls = 0
	m.WindowThreadIDCalls = nil
	m.Calls = nil
}
