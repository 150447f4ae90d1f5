//go:build windows

package windows

import "fmt"

// WindowInfo describes a top-level window for logging
type WindowInfo struct {
	Hwnd  uintptr
	Title string
	Class string
	Pid   uint32
}

func (w WindowInfo) String() string {
	return fmt.Sprintf("%q [%s] pid=%d", w.Title, w.Class, w.Pid)
}
