// Package hotkeytest provides a fake hotkey binding for listener tests.
package hotkeytest

import (
	"sync"

	"golang.design/x/hotkey"
)

// MockBinding stands in for an OS hotkey registration. Press delivers a
// keydown and blocks until the listener receives it.
type MockBinding struct {
	mu            sync.Mutex
	keydown       chan hotkey.Event
	registerErr   error
	unregisterErr error
	registered    bool
	RegisterCalls int
}

func NewMockBinding() *MockBinding {
	return &MockBinding{keydown: make(chan hotkey.Event)}
}

func (m *MockBinding) Register() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.RegisterCalls++
	if m.registerErr != nil {
		return m.registerErr
	}

	m.registered = true
	return nil
}

func (m *MockBinding) Unregister() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.registered = false
	return m.unregisterErr
}

func (m *MockBinding) Keydown() <-chan hotkey.Event { return m.keydown }

// Press simulates one keydown
func (m *MockBinding) Press() {
	m.keydown <- hotkey.Event{}
}

// Keys exposes the keydown channel for tests that must not block on a send
func (m *MockBinding) Keys() chan<- hotkey.Event { return m.keydown }

func (m *MockBinding) Registered() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.registered
}

func (m *MockBinding) WithRegisterError(err error) *MockBinding {
	m.registerErr = err
	return m
}

func (m *MockBinding) WithUnregisterError(err error) *MockBinding {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.unregisterErr = err
	return m
}

// MockBindings is a binding factory that remembers every binding it made
type MockBindings struct {
	mu       sync.Mutex
	Bindings []*MockBinding
	Err      error
}

// New creates the next binding, failing registration when Err is set
func (f *MockBindings) New() *MockBinding {
	f.mu.Lock()
	defer f.mu.Unlock()

	b := NewMockBinding()
	if f.Err != nil {
		b.WithRegisterError(f.Err)
	}

	f.Bindings = append(f.Bindings, b)
	return b
}

// Last returns the most recently created binding
func (f *MockBindings) Last() *MockBinding {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.Bindings) == 0 {
		return nil
	}

	return f.Bindings[len(f.Bindings)-1]
}

func (f *MockBindings) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.Bindings)
}
