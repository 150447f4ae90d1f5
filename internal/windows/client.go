//go:build windows

package windows

import (
	"github.com/Norgate-AV/cursormon/internal/logger"
)

// Client provides methods for interacting with Windows APIs
// It composes specialized managers for different categories of functionality
type Client struct {
	log    logger.LoggerInterface
	Window *windowManager
	Cursor *cursorManager
	Input  *inputManager
}

// NewClient creates a new Windows API client
func NewClient(log logger.LoggerInterface, opts DesktopOptions) *Client {
	return &Client{
		log:    log,
		Window: newWindowManager(log, opts.VisibleOnly),
		Cursor: newCursorManager(log),
		Input:  newInputManager(log),
	}
}
