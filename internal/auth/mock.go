package auth

import (
	"context"
	"sync"
)

// MockProvider is a deterministic in-memory Provider for tests. It
// records calls and can be told to fail with a given message.
type MockProvider struct {
	mu          sync.Mutex
	FailWith    string // when non-empty, every call fails with this message
	SignOutErr  error
	Identities  map[string]*Identity // keyed by email
	SignInCalls int
	SignUpCalls int
	signedOut   int
	subscribers map[int]func(*Identity)
	nextSub     int
}

var _ Provider = (*MockProvider)(nil)

// NewMockProvider creates a MockProvider with no registered accounts.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Identities:  make(map[string]*Identity),
		subscribers: make(map[int]func(*Identity)),
	}
}

func (m *MockProvider) SignIn(_ context.Context, email, _ string) (*Identity, error) {
	m.mu.Lock()
	m.SignInCalls++
	fail := m.FailWith
	ident := m.Identities[email]
	m.mu.Unlock()

	if fail != "" {
		return nil, &AuthError{Message: fail}
	}
	if ident == nil {
		return nil, &AuthError{Message: "Invalid login credentials"}
	}
	m.Push(ident)
	return ident, nil
}

func (m *MockProvider) SignUp(_ context.Context, email, _, displayName string) (*Identity, error) {
	m.mu.Lock()
	m.SignUpCalls++
	fail := m.FailWith
	m.mu.Unlock()

	if fail != "" {
		return nil, &AuthError{Message: fail}
	}

	ident := &Identity{ID: "user-" + email, DisplayName: displayName, Email: email}
	m.mu.Lock()
	m.Identities[email] = ident
	m.mu.Unlock()

	m.Push(ident)
	return ident, nil
}

func (m *MockProvider) SignOut(_ context.Context) error {
	m.mu.Lock()
	m.signedOut++
	err := m.SignOutErr
	m.mu.Unlock()

	m.Push(nil)
	return err
}

func (m *MockProvider) Subscribe(fn func(*Identity)) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subscribers[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subscribers, id)
		m.mu.Unlock()
	}
}

// Push simulates an async auth-state notification from the provider.
func (m *MockProvider) Push(ident *Identity) {
	m.mu.Lock()
	fns := make([]func(*Identity), 0, len(m.subscribers))
	for _, fn := range m.subscribers {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(ident)
	}
}

// SignOutCalls returns how many times SignOut was invoked.
func (m *MockProvider) SignOutCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.signedOut
}
