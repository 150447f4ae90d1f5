package focus

// Memory maps a display ID to the window that last held focus while the
// cursor was on that display. Entries are consumed when restored. The
// stored handles may refer to windows that have since closed.
type Memory struct {
	windows map[int]uintptr
}

// NewMemory creates an empty focus memory
func NewMemory() *Memory {
	return &Memory{windows: make(map[int]uintptr)}
}

// Record stores hwnd for the display, replacing any previous entry.
// A zero handle clears the entry.
func (m *Memory) Record(displayID int, hwnd uintptr) {
	if hwnd == 0 {
		delete(m.windows, displayID)
		return
	}

	m.windows[displayID] = hwnd
}

// Take returns and clears the entry for the display
func (m *Memory) Take(displayID int) (uintptr, bool) {
	hwnd, ok := m.windows[displayID]
	if ok {
		delete(m.windows, displayID)
	}

	return hwnd, ok
}

// Peek returns the entry for the display without consuming it
func (m *Memory) Peek(displayID int) (uintptr, bool) {
	hwnd, ok := m.windows[displayID]
	return hwnd, ok
}

// Len returns the number of displays with a remembered window
func (m *Memory) Len() int {
	return len(m.windows)
}
