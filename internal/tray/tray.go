package tray

import (
	"log/slog"

	"fyne.io/systray"

	"github.com/Norgate-AV/cursormon/internal/logger"
	"github.com/Norgate-AV/cursormon/internal/version"
)

type menuView struct {
	start *systray.MenuItem
	stop  *systray.MenuItem
}

func (v *menuView) SetArmed(armed bool) {
	if armed {
		v.start.Disable()
		v.stop.Enable()
		return
	}

	v.start.Enable()
	v.stop.Disable()
}

// Run shows the tray icon, arms the hotkey and blocks until Exit is chosen
// or Quit is called. The hotkey is always disarmed before Run returns.
func Run(ctrl *Controller, log logger.LoggerInterface) {
	systray.Run(func() { onReady(ctrl, log) }, func() {
		ctrl.SetView(nil)
		ctrl.Stop()
		log.Info("Tray exited")
	})
}

// Quit ends a running tray loop from any goroutine
func Quit() {
	systray.Quit()
}

func onReady(ctrl *Controller, log logger.LoggerInterface) {
	systray.SetIcon(Icon())
	systray.SetTooltip(Tooltip)

	title := systray.AddMenuItem(Tooltip+" "+version.GetVersion(), "")
	title.Disable()
	systray.AddSeparator()

	view := &menuView{
		start: systray.AddMenuItem("Start", "Register the Alt+Shift hotkey"),
		stop:  systray.AddMenuItem("Stop", "Unregister the Alt+Shift hotkey"),
	}
	exit := systray.AddMenuItem("Exit", "Quit "+logger.AppName)

	ctrl.SetView(view)
	ctrl.Start()

	log.Info("Tray ready", slog.Bool("armed", ctrl.Armed()))

	go func() {
		for {
			select {
			case <-view.start.ClickedCh:
				log.Debug("Start selected")
				ctrl.Start()
			case <-view.stop.ClickedCh:
				log.Debug("Stop selected")
				ctrl.Stop()
			case <-exit.ClickedCh:
				log.Debug("Exit selected")
				systray.Quit()
				return
			}
		}
	}()
}
