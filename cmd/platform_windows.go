//go:build windows

package cmd

import (
	"log/slog"

	"github.com/Norgate-AV/cursormon/internal/interfaces"
	"github.com/Norgate-AV/cursormon/internal/logger"
	"github.com/Norgate-AV/cursormon/internal/windows"
)

func newDesktop(log logger.LoggerInterface, cfg *Config) (interfaces.Desktop, error) {
	return windows.NewDesktop(log, windows.DesktopOptions{VisibleOnly: cfg.VisibleOnly}), nil
}

func newNotifier(log logger.LoggerInterface) interfaces.Notifier {
	return windows.NewMessageBoxNotifier(log)
}

func isElevated() bool {
	return windows.IsElevated()
}

func relaunchAsAdmin() error {
	return windows.RelaunchAsAdmin()
}

// setupConsoleHandler catches console close, logoff and shutdown, which
// do not arrive as signals
func setupConsoleHandler(ctx *ExecutionContext) {
	err := windows.SetConsoleCtrlHandler(func(ctrlType uint32) uintptr {
		ctx.log.Debug("Received console control event",
			slog.String("type", windows.GetCtrlTypeName(ctrlType)),
			slog.Uint64("code", uint64(ctrlType)),
		)

		ctx.log.Info("Unregistering hotkey after console control event")
		ctx.cleanup()
		ctx.log.Debug("Cleanup completed, exiting")

		ctx.exitFunc(130)
		return 1
	})
	if err != nil {
		ctx.log.Debug("SetConsoleCtrlHandler failed", slog.Any("error", err))
	}
}
