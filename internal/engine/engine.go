// Package engine moves the cursor to the next display and hands keyboard
// focus to a window there. It runs one trigger at a time on the caller's
// goroutine and keeps no state between triggers other than the focus memory.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/Norgate-AV/cursormon/internal/display"
	"github.com/Norgate-AV/cursormon/internal/focus"
	"github.com/Norgate-AV/cursormon/internal/interfaces"
	"github.com/Norgate-AV/cursormon/internal/logger"
)

var (
	// ErrCursorUnavailable is returned when the cursor position cannot be read
	ErrCursorUnavailable = errors.New("cursor position unavailable")

	// ErrOutsideDisplays is returned when the cursor lies in no display's bounds
	ErrOutsideDisplays = errors.New("cursor is not on any display")

	// ErrFault wraps a panic recovered from an OS call
	ErrFault = errors.New("os call faulted")
)

// State is the engine's only mutable state
type State struct {
	Memory *focus.Memory
	Policy focus.Policy
}

// Outcome describes what a single trigger did
type Outcome struct {
	Origin      display.Region
	Destination display.Region
	Point       display.Point
	Moved       bool
	Target      uintptr
	Resolved    bool
	Transferred bool

	// Aborted is set when the trigger stopped before moving the cursor
	Aborted error
}

// Engine runs the locate / move / resolve / transfer sequence
type Engine struct {
	desktop  interfaces.Desktop
	state    State
	resolver focus.Resolver
	transfer *focus.Transferrer
	log      logger.LoggerInterface
}

// New creates an engine using the given focus policy
func New(desktop interfaces.Desktop, policy focus.Policy, log logger.LoggerInterface) (*Engine, error) {
	memory := focus.NewMemory()

	resolver, err := focus.NewResolver(policy, desktop, memory, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create focus resolver: %w", err)
	}

	return &Engine{
		desktop:  desktop,
		state:    State{Memory: memory, Policy: policy},
		resolver: resolver,
		transfer: focus.NewTransferrer(desktop, log),
		log:      log,
	}, nil
}

// Policy returns the active focus policy
func (e *Engine) Policy() focus.Policy {
	return e.state.Policy
}

// Memory returns the per-display focus memory
func (e *Engine) Memory() *focus.Memory {
	return e.state.Memory
}

// Trigger performs one transfer. It never panics and never returns an
// error: every failure ends the run early and is reported in the Outcome.
func (e *Engine) Trigger() Outcome {
	var out Outcome

	var displays []display.Region
	if err := e.guard("list displays", func() error {
		var err error
		displays, err = e.desktop.Displays()
		return err
	}); err != nil {
		return e.abort(out, err)
	}

	if len(displays) == 0 {
		return e.abort(out, display.ErrNoDisplays)
	}

	var cursor display.Point
	if err := e.guard("read cursor", func() error {
		var ok bool
		if cursor, ok = e.desktop.CursorPos(); !ok {
			return ErrCursorUnavailable
		}
		return nil
	}); err != nil {
		return e.abort(out, err)
	}

	origin, ok := display.Locate(cursor, displays)
	if !ok {
		return e.abort(out, fmt.Errorf("%w: %s", ErrOutsideDisplays, cursor))
	}

	out.Origin = origin

	// Memory is refreshed for the origin only, so a display's entry reflects
	// the window focused when the cursor last left it.
	if err := e.guard("remember focus", func() error {
		e.resolver.Remember(origin, e.desktop.ForegroundWindow())
		return nil
	}); err != nil {
		e.log.Warn("Could not record focused window", slog.Int("display", origin.ID), slog.Any("error", err))
	}

	dest, err := display.Next(origin, displays)
	if err != nil {
		return e.abort(out, err)
	}

	out.Destination = dest
	out.Point = display.Center(dest)

	if dest.ID == origin.ID {
		// Single display: the cursor stays where it is and focus is resolved there.
		out.Point = cursor
		e.log.Debug("Only one display, cursor left in place", slog.Int("display", dest.ID))
	} else if err := e.guard("move cursor", func() error {
		out.Moved = e.desktop.SetCursorPos(out.Point)
		return nil
	}); err != nil || !out.Moved {
		e.log.Warn("Failed to move cursor", slog.String("to", out.Point.String()), slog.Any("error", err))
	} else {
		e.log.Info("Moved cursor to display",
			slog.Int("display", dest.ID),
			slog.Int("of", len(displays)),
			slog.Int("x", int(out.Point.X)),
			slog.Int("y", int(out.Point.Y)),
		)
	}

	if err := e.guard("resolve focus target", func() error {
		out.Target, out.Resolved = e.resolver.Resolve(dest, out.Point)
		return nil
	}); err != nil || !out.Resolved {
		e.log.Debug("No focus target on display",
			slog.Int("display", dest.ID),
			slog.String("policy", e.state.Policy.String()),
			slog.Any("error", err),
		)
		out.Target, out.Resolved = 0, false
		return out
	}

	if err := e.guard("transfer focus", func() error {
		out.Transferred = e.transfer.TransferFocus(out.Target)
		return nil
	}); err != nil || !out.Transferred {
		e.log.Warn("Focus transfer failed",
			slog.Uint64("hwnd", uint64(out.Target)),
			slog.Any("error", err),
		)
		out.Transferred = false
		return out
	}

	e.log.Debug("Trigger complete",
		slog.Int("from", origin.ID),
		slog.Int("to", dest.ID),
		slog.Uint64("hwnd", uint64(out.Target)),
	)

	return out
}

func (e *Engine) abort(out Outcome, err error) Outcome {
	e.log.Debug("Trigger skipped", slog.Any("reason", err))
	out.Aborted = err
	return out
}

// guard runs one step and turns a panic into ErrFault
func (e *Engine) guard(step string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("PANIC RECOVERED",
				slog.String("step", step),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("%s: %w: %v", step, ErrFault, r)
		}
	}()

	return fn()
}
