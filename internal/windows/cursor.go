//go:build windows

package windows

import (
	"log/slog"

	"github.com/lxn/win"

	"github.com/Norgate-AV/cursormon/internal/display"
	"github.com/Norgate-AV/cursormon/internal/logger"
)

type cursorManager struct {
	log logger.LoggerInterface
}

func newCursorManager(log logger.LoggerInterface) *cursorManager {
	return &cursorManager{log: log}
}

// Position reads the cursor in virtual-desktop coordinates. It fails on
// the secure desktop and while the workstation is locked.
func (c *cursorManager) Position() (display.Point, bool) {
	var pt win.POINT

	if !win.GetCursorPos(&pt) {
		c.log.Debug("GetCursorPos failed")
		return display.Point{}, false
	}

	return display.Point{X: pt.X, Y: pt.Y}, true
}

func (c *cursorManager) MoveTo(p display.Point) bool {
	if !win.SetCursorPos(p.X, p.Y) {
		c.log.Debug("SetCursorPos failed", slog.String("point", p.String()))
		return false
	}

	return true
}
