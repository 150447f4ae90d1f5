package display

import (
	"fmt"
	"image"

	"github.com/kbinani/screenshot"
)

// ScreenReader lists the active displays. It never caches: monitors can be
// attached or detached between two calls.
type ScreenReader struct {
	count  func() int
	bounds func(int) image.Rectangle
}

// NewScreenReader creates a reader backed by the OS display enumeration
func NewScreenReader() *ScreenReader {
	return &ScreenReader{
		count:  screenshot.NumActiveDisplays,
		bounds: screenshot.GetDisplayBounds,
	}
}

// Displays returns the active displays in OS enumeration order.
// Displays reporting empty bounds are skipped.
func (s *ScreenReader) Displays() ([]Region, error) {
	n := s.count()
	if n <= 0 {
		return nil, ErrNoDisplays
	}

	regions := make([]Region, 0, n)

	for i := range n {
		r := fromImageRect(s.bounds(i))
		if r.Empty() {
			continue
		}

		regions = append(regions, Region{ID: i, Bounds: r})
	}

	if len(regions) == 0 {
		return nil, fmt.Errorf("all %d displays reported empty bounds: %w", n, ErrNoDisplays)
	}

	return regions, nil
}

func fromImageRect(r image.Rectangle) Rect {
	return Rect{
		Left:   int32(r.Min.X),
		Top:    int32(r.Min.Y),
		Right:  int32(r.Max.X),
		Bottom: int32(r.Max.Y),
	}
}
