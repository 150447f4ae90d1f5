package testutil

import "sync"

// Notification is one message shown through MockNotifier
type Notification struct {
	Title   string
	Message string
	Error   bool
}

// MockNotifier records notifications instead of showing them
type MockNotifier struct {
	mu            sync.Mutex
	Notifications []Notification
}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) Notify(title, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Notifications = append(m.Notifications, Notification{Title: title, Message: message})
}

func (m *MockNotifier) NotifyError(title, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Notifications = append(m.Notifications, Notification{Title: title, Message: message, Error: true})
}

// Errors returns only the error notifications
func (m *MockNotifier) Errors() []Notification {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Notification
	for _, n := range m.Notifications {
		if n.Error {
			out = append(out, n)
		}
	}

	return out
}
