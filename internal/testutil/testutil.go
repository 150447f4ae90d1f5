// Package testutil provides test utilities and mock implementations.
package testutil

import (
	"github.com/Norgate-AV/cursormon/internal/display"
)

// DualDisplays returns two 1920x1080 displays side by side
func DualDisplays() []display.Region {
	return []display.Region{
		{ID: 0, Bounds: display.RectFromSize(0, 0, 1920, 1080)},
		{ID: 1, Bounds: display.RectFromSize(1920, 0, 1920, 1080)},
	}
}

// SingleDisplay returns one 1920x1080 display at the origin
func SingleDisplay() []display.Region {
	return []display.Region{
		{ID: 0, Bounds: display.RectFromSize(0, 0, 1920, 1080)},
	}
}
