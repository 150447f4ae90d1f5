package focus

import (
	"log/slog"
	"runtime"

	"github.com/Norgate-AV/cursormon/internal/interfaces"
	"github.com/Norgate-AV/cursormon/internal/logger"
)

// Transferrer moves keyboard focus to arbitrary top-level windows
type Transferrer struct {
	threads interfaces.InputThreads
	log     logger.LoggerInterface
}

// NewTransferrer creates a Transferrer over the given OS primitives
func NewTransferrer(threads interfaces.InputThreads, log logger.LoggerInterface) *Transferrer {
	return &Transferrer{threads: threads, log: log}
}

// TransferFocus brings hwnd to the foreground. When the window belongs to
// another input thread, the calling thread's input is attached to it for
// the duration of the SetForegroundWindow call. Returns false when the OS
// refuses or the handle is stale.
//
// The goroutine stays on one OS thread for the whole sequence, since the
// attachment belongs to the thread whose id was read.
func (t *Transferrer) TransferFocus(hwnd uintptr) bool {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	defer t.allowSetForeground()

	targetThread := t.threads.WindowThreadID(hwnd)
	if targetThread == 0 {
		t.log.Warn("Focus target has no owning thread, window is probably gone", slog.Uint64("hwnd", uint64(hwnd)))
		return false
	}

	currentThread := t.threads.CurrentThreadID()

	var ok bool
	if targetThread == currentThread {
		ok = t.threads.SetForegroundWindow(hwnd)
	} else {
		ok = t.withAttachedInput(currentThread, targetThread, func() bool {
			return t.threads.SetForegroundWindow(hwnd)
		})
	}

	if !ok {
		t.log.Warn("SetForegroundWindow failed",
			slog.Uint64("hwnd", uint64(hwnd)),
			slog.Uint64("thread", uint64(targetThread)),
		)
		return false
	}

	t.log.Debug("Focus transferred",
		slog.Uint64("hwnd", uint64(hwnd)),
		slog.Uint64("thread", uint64(targetThread)),
		slog.Bool("attached", targetThread != currentThread),
	)

	return true
}

// withAttachedInput runs fn with from's input attached to to. The detach
// always runs, including when fn fails or panics.
func (t *Transferrer) withAttachedInput(from, to uint32, fn func() bool) bool {
	if !t.threads.AttachThreadInput(from, to, true) {
		t.log.Debug("AttachThreadInput failed",
			slog.Uint64("from", uint64(from)),
			slog.Uint64("to", uint64(to)),
		)
	}

	defer func() {
		if !t.threads.AttachThreadInput(from, to, false) {
			t.log.Debug("Failed to detach thread input",
				slog.Uint64("from", uint64(from)),
				slog.Uint64("to", uint64(to)),
			)
		}
	}()

	return fn()
}

func (t *Transferrer) allowSetForeground() {
	if !t.threads.AllowSetForegroundWindow() {
		t.log.Trace("AllowSetForegroundWindow failed")
	}
}
