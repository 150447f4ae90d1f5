// Package tray hosts the notification-area icon and its Start/Stop/Exit menu.
package tray

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/Norgate-AV/cursormon/internal/hotkey"
	"github.com/Norgate-AV/cursormon/internal/interfaces"
	"github.com/Norgate-AV/cursormon/internal/logger"
)

const (
	// Tooltip is shown when hovering over the tray icon
	Tooltip = "Monitor Cursor Switcher"

	// ErrorTitle captions error notifications
	ErrorTitle = "Error"

	// RegisterFailedMessage is shown when the hotkey cannot be registered
	// by a process that is not elevated
	RegisterFailedMessage = "Failed to register hotkey (Alt+Shift). Try running as administrator."

	// RegisterConflictMessage is shown when an elevated process still cannot
	// register the hotkey
	RegisterConflictMessage = "Failed to register hotkey (Alt+Shift). Another program may already be using it."
)

// Arm is the hotkey registration the menu toggles
type Arm interface {
	Start() error
	Stop() error
	Active() bool
}

// View reflects the armed state in the menu
type View interface {
	SetArmed(armed bool)
}

// ControllerOptions configures a Controller
type ControllerOptions struct {
	// Elevated selects the registration failure message
	Elevated bool
}

// Controller implements the menu actions independently of the tray library
type Controller struct {
	mu       sync.Mutex
	arm      Arm
	notifier interfaces.Notifier
	log      logger.LoggerInterface
	opts     ControllerOptions
	view     View
}

// NewController creates a controller for the given hotkey registration
func NewController(arm Arm, notifier interfaces.Notifier, log logger.LoggerInterface, opts ControllerOptions) *Controller {
	return &Controller{
		arm:      arm,
		notifier: notifier,
		log:      log,
		opts:     opts,
	}
}

// SetView attaches the menu and syncs it with the current state
func (c *Controller) SetView(v View) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.view = v
	c.refresh()
}

// Start arms the hotkey. Starting while armed does nothing. A registration
// failure is reported to the user once and leaves the hotkey disarmed.
func (c *Controller) Start() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.refresh()

	err := c.arm.Start()
	switch {
	case err == nil:
		return true
	case errors.Is(err, hotkey.ErrAlreadyActive):
		c.log.Debug("Hotkey already registered")
		return true
	}

	c.log.Error("Failed to register hotkey", slog.Any("error", err), slog.Bool("elevated", c.opts.Elevated))

	msg := RegisterFailedMessage
	if c.opts.Elevated {
		msg = RegisterConflictMessage
	}

	c.notifier.NotifyError(ErrorTitle, msg)
	return false
}

// Stop disarms the hotkey. Stopping while disarmed does nothing.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.refresh()

	if err := c.arm.Stop(); err != nil {
		c.log.Warn("Failed to unregister hotkey", slog.Any("error", err))
	}
}

// Armed reports whether the hotkey is registered
func (c *Controller) Armed() bool {
	return c.arm.Active()
}

func (c *Controller) refresh() {
	if c.view != nil {
		c.view.SetArmed(c.arm.Active())
	}
}
