//go:build windows

package windows

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// GetWindowText retrieves the text of a window
func GetWindowText(hwnd uintptr) string {
	buf := make([]uint16, 256)

	ret, _, _ := procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if ret == 0 {
		return ""
	}

	return windows.UTF16ToString(buf)
}

// GetClassName retrieves the class name of a window
func GetClassName(hwnd uintptr) string {
	buf := make([]uint16, 256)

	n, err := windows.GetClassName(windows.HWND(hwnd), &buf[0], int32(len(buf)))
	if err != nil || n == 0 {
		return ""
	}

	return windows.UTF16ToString(buf[:n])
}

// IsWindow checks if a window handle is valid
func IsWindow(hwnd uintptr) bool {
	return windows.IsWindow(windows.HWND(hwnd))
}

// IsWindowVisible checks if a window is visible
func IsWindowVisible(hwnd uintptr) bool {
	return windows.IsWindowVisible(windows.HWND(hwnd))
}

// GetWindowPid retrieves the process ID of a window
func GetWindowPid(hwnd uintptr) uint32 {
	var pid uint32

	if _, err := windows.GetWindowThreadProcessId(windows.HWND(hwnd), &pid); err != nil {
		return 0
	}

	return pid
}

// describeWindow collects title, class and owning process for logging
func describeWindow(hwnd uintptr) WindowInfo {
	return WindowInfo{
		Hwnd:  hwnd,
		Title: GetWindowText(hwnd),
		Class: GetClassName(hwnd),
		Pid:   GetWindowPid(hwnd),
	}
}
