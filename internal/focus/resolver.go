package focus

import (
	"fmt"
	"log/slog"

	"github.com/Norgate-AV/cursormon/internal/display"
	"github.com/Norgate-AV/cursormon/internal/interfaces"
	"github.com/Norgate-AV/cursormon/internal/logger"
)

// Resolver picks the window that should receive focus on arrival
type Resolver interface {
	Policy() Policy

	// Remember is called with the origin display and the focused window
	// before the cursor leaves the origin.
	Remember(origin display.Region, foreground uintptr)

	// Resolve returns the focus target for the destination display, or
	// false when there is none.
	Resolve(dest display.Region, point display.Point) (uintptr, bool)
}

// NewResolver builds the resolver for a policy. The memory is only used by
// RememberedPerDisplay and stays owned by the caller.
func NewResolver(policy Policy, windows interfaces.WindowEnumerator, memory *Memory, log logger.LoggerInterface) (Resolver, error) {
	switch policy {
	case TopmostUnderPoint:
		return &topmostResolver{windows: windows, log: log}, nil
	case RememberedPerDisplay:
		return &rememberedResolver{memory: memory, log: log}, nil
	case NoFocus:
		return noFocusResolver{}, nil
	default:
		return nil, fmt.Errorf("no resolver for %s", policy)
	}
}

// topmostResolver walks windows front to back and stops at the first one
// whose bounds contain the destination point.
type topmostResolver struct {
	windows interfaces.WindowEnumerator
	log     logger.LoggerInterface
}

func (r *topmostResolver) Policy() Policy { return TopmostUnderPoint }

func (r *topmostResolver) Remember(display.Region, uintptr) {}

func (r *topmostResolver) Resolve(dest display.Region, point display.Point) (uintptr, bool) {
	foreground := r.windows.ForegroundWindow()
	scanned := 0

	for hwnd := range r.windows.TopLevelWindows() {
		scanned++

		if hwnd == foreground {
			continue
		}

		rect, ok := r.windows.WindowRect(hwnd)
		if !ok {
			r.log.Trace("Window rect unavailable, skipping", slog.Uint64("hwnd", uint64(hwnd)))
			continue
		}

		if rect.Contains(point) {
			r.log.Debug("Found window under cursor",
				slog.Uint64("hwnd", uint64(hwnd)),
				slog.Int("display", dest.ID),
				slog.Int("scanned", scanned),
			)
			return hwnd, true
		}
	}

	r.log.Debug("No window under cursor", slog.Int("display", dest.ID), slog.Int("scanned", scanned))
	return 0, false
}

// rememberedResolver restores the window recorded for the destination
type rememberedResolver struct {
	memory *Memory
	log    logger.LoggerInterface
}

func (r *rememberedResolver) Policy() Policy { return RememberedPerDisplay }

func (r *rememberedResolver) Remember(origin display.Region, foreground uintptr) {
	r.memory.Record(origin.ID, foreground)
	r.log.Debug("Remembered focused window",
		slog.Int("display", origin.ID),
		slog.Uint64("hwnd", uint64(foreground)),
	)
}

func (r *rememberedResolver) Resolve(dest display.Region, _ display.Point) (uintptr, bool) {
	hwnd, ok := r.memory.Take(dest.ID)
	if !ok {
		r.log.Debug("No remembered window for display", slog.Int("display", dest.ID))
		return 0, false
	}

	return hwnd, true
}

type noFocusResolver struct{}

func (noFocusResolver) Policy() Policy { return NoFocus }

func (noFocusResolver) Remember(display.Region, uintptr) {}

func (noFocusResolver) Resolve(display.Region, display.Point) (uintptr, bool) {
	return 0, false
}
