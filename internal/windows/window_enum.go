//go:build windows

package windows

import (
	"sync"

	"golang.org/x/sys/windows"
)

// EnumWindows gets one package-level callback; the consumer of the current
// enumeration is swapped in under enumMu. Enumerations are serialised, so a
// consumer must not start another enumeration from inside its yield.
var (
	enumMu       sync.Mutex
	enumYield    func(uintptr) bool
	enumPanic    any
	enumCallback = windows.NewCallback(enumWindowsProc)
)

func enumWindowsProc(hwnd windows.HWND, _ uintptr) uintptr {
	defer func() {
		if r := recover(); r != nil {
			enumPanic = r
		}
	}()

	if enumYield(uintptr(hwnd)) {
		return 1
	}

	return 0
}

// enumTopLevel walks top-level windows front to back and stops as soon as
// yield returns false. A panic raised by yield is re-raised on the caller's
// stack once EnumWindows has returned.
func enumTopLevel(yield func(uintptr) bool) {
	enumMu.Lock()
	defer enumMu.Unlock()

	enumYield = yield
	enumPanic = nil

	defer func() {
		enumYield = nil
	}()

	// EnumWindows reports an error when the callback stops early, which is
	// the normal short-circuit path here.
	_ = windows.EnumWindows(enumCallback, nil)

	if p := enumPanic; p != nil {
		enumPanic = nil
		panic(p)
	}
}
