//go:build darwin

package hotkey

import "golang.design/x/hotkey"

func modifiers() []hotkey.Modifier {
	return []hotkey.Modifier{hotkey.ModOption, hotkey.ModShift}
}
