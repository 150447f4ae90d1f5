//go:build !windows

package cmd

import (
	"errors"
	"log/slog"

	"github.com/Norgate-AV/cursormon/internal/interfaces"
	"github.com/Norgate-AV/cursormon/internal/logger"
)

var errUnsupportedPlatform = errors.New("cursormon only supports Windows")

func newDesktop(logger.LoggerInterface, *Config) (interfaces.Desktop, error) {
	return nil, errUnsupportedPlatform
}

// logNotifier sends notifications to the log
type logNotifier struct {
	log logger.LoggerInterface
}

func (n logNotifier) Notify(title, message string) {
	n.log.Info(message, slog.String("title", title))
}

func (n logNotifier) NotifyError(title, message string) {
	n.log.Error(message, slog.String("title", title))
}

func newNotifier(log logger.LoggerInterface) interfaces.Notifier {
	return logNotifier{log: log}
}

func isElevated() bool {
	return false
}

func relaunchAsAdmin() error {
	return errUnsupportedPlatform
}

func setupConsoleHandler(*ExecutionContext) {}
