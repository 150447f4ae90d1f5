//go:build windows

package hotkey

import "golang.design/x/hotkey"

func modifiers() []hotkey.Modifier {
	return []hotkey.Modifier{hotkey.ModAlt, hotkey.ModShift}
}
