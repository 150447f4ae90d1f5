package display

import "errors"

var (
	// ErrNoDisplays is returned when the OS reports no usable display
	ErrNoDisplays = errors.New("no displays available")

	// ErrUnknownDisplay is returned when a display is not part of the current layout
	ErrUnknownDisplay = errors.New("display not present in layout")
)

// Locate returns the first display whose bounds contain p
func Locate(p Point, displays []Region) (Region, bool) {
	for _, d := range displays {
		if d.Bounds.Contains(p) {
			return d, true
		}
	}

	return Region{}, false
}

// IndexOf returns the position of the display with the same ID, or -1
func IndexOf(current Region, displays []Region) int {
	for i, d := range displays {
		if d.ID == current.ID {
			return i
		}
	}

	return -1
}

// Next returns the display after current in enumeration order, wrapping
// around to the first one.
func Next(current Region, displays []Region) (Region, error) {
	if len(displays) == 0 {
		return Region{}, ErrNoDisplays
	}

	i := IndexOf(current, displays)
	if i < 0 {
		return Region{}, ErrUnknownDisplay
	}

	return displays[(i+1)%len(displays)], nil
}

// Center returns the point the cursor is moved to on arrival
func Center(d Region) Point {
	return d.Bounds.Center()
}
