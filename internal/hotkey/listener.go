// Package hotkey registers the global Alt+Shift chord and dispatches each
// press to a handler on a dedicated goroutine.
package hotkey

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"runtime/debug"
	"sync"

	"golang.design/x/hotkey"

	"github.com/Norgate-AV/cursormon/internal/logger"
)

// Chord is the human-readable name of the registered combination
const Chord = "Alt+Shift"

var (
	// ErrAlreadyActive is returned by Start when the hotkey is registered
	ErrAlreadyActive = errors.New("hotkey listener already active")

	// ErrRegister wraps the OS refusal to register the hotkey
	ErrRegister = errors.New("failed to register hotkey")
)

// Binding is a registered OS hotkey. *hotkey.Hotkey satisfies it.
type Binding interface {
	Register() error
	Unregister() error
	Keydown() <-chan hotkey.Event
}

// NewBinding returns a fresh, unregistered Alt+Shift binding. The key is
// left empty so the chord fires on the modifiers alone.
func NewBinding() Binding {
	return hotkey.New(modifiers(), hotkey.Key(0))
}

// Listener owns the hotkey registration and its dispatch goroutine
type Listener struct {
	mu         sync.Mutex
	newBinding func() Binding
	handler    func()
	log        logger.LoggerInterface

	binding Binding
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewListener creates a listener bound to the system Alt+Shift hotkey
func NewListener(handler func(), log logger.LoggerInterface) *Listener {
	return NewListenerWithBinding(NewBinding, handler, log)
}

// NewListenerWithBinding creates a listener that obtains a new binding from
// newBinding on every Start
func NewListenerWithBinding(newBinding func() Binding, handler func(), log logger.LoggerInterface) *Listener {
	return &Listener{
		newBinding: newBinding,
		handler:    handler,
		log:        log,
	}
}

// Start registers the hotkey and begins dispatching presses
func (l *Listener) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.binding != nil {
		return ErrAlreadyActive
	}

	b := l.newBinding()
	if err := b.Register(); err != nil {
		return fmt.Errorf("%w (%s): %w", ErrRegister, Chord, err)
	}

	l.binding = b
	l.done = make(chan struct{})

	l.wg.Add(1)
	go l.dispatch(b.Keydown(), l.done)

	l.log.Info("Hotkey registered", slog.String("chord", Chord))
	return nil
}

// Stop unregisters the hotkey and waits for the dispatch goroutine to exit.
// Stopping an inactive listener is a no-op.
func (l *Listener) Stop() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.binding == nil {
		return nil
	}

	close(l.done)
	l.wg.Wait()

	err := l.binding.Unregister()
	l.binding = nil
	l.done = nil

	if err != nil {
		return fmt.Errorf("failed to unregister hotkey: %w", err)
	}

	l.log.Info("Hotkey unregistered", slog.String("chord", Chord))
	return nil
}

// Active reports whether the hotkey is currently registered
func (l *Listener) Active() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.binding != nil
}

// dispatch runs every handler call on one OS thread so that thread-input
// attachments made by the handler are undone on the same thread.
func (l *Listener) dispatch(keydown <-chan hotkey.Event, done <-chan struct{}) {
	defer l.wg.Done()

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	for {
		select {
		case <-done:
			return
		case _, ok := <-keydown:
			if !ok {
				return
			}

			l.fire()
		}
	}
}

func (l *Listener) fire() {
	defer func() {
		if r := recover(); r != nil {
			l.log.Error("PANIC RECOVERED",
				slog.String("source", "hotkey handler"),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
		}
	}()

	l.log.Trace("Hotkey pressed", slog.String("chord", Chord))
	l.handler()
}
