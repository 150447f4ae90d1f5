//go:build linux

package hotkey

import "golang.design/x/hotkey"

// Alt is Mod1 on X11
func modifiers() []hotkey.Modifier {
	return []hotkey.Modifier{hotkey.Mod1, hotkey.ModShift}
}
