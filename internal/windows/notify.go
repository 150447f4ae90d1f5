//go:build windows

package windows

import (
	"log/slog"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/Norgate-AV/cursormon/internal/logger"
)

// MessageBoxNotifier shows notifications as modal message boxes.
// Each box runs on its own goroutine so the caller never blocks on the user.
type MessageBoxNotifier struct {
	log logger.LoggerInterface
}

func NewMessageBoxNotifier(log logger.LoggerInterface) *MessageBoxNotifier {
	return &MessageBoxNotifier{log: log}
}

func (n *MessageBoxNotifier) Notify(title, message string) {
	n.show(title, message, win.MB_OK|win.MB_ICONINFORMATION)
}

func (n *MessageBoxNotifier) NotifyError(title, message string) {
	n.show(title, message, win.MB_OK|win.MB_ICONERROR)
}

func (n *MessageBoxNotifier) show(title, message string, flags uint32) {
	text, err := windows.UTF16PtrFromString(message)
	if err != nil {
		n.log.Warn("Invalid notification text", slog.Any("error", err))
		return
	}

	caption, err := windows.UTF16PtrFromString(title)
	if err != nil {
		n.log.Warn("Invalid notification title", slog.Any("error", err))
		return
	}

	go win.MessageBox(0, text, caption, flags|win.MB_SETFOREGROUND)
}
