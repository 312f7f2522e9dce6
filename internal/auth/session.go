package auth

import (
	"context"
	"sync"
)

// Store holds the current authenticated identity, or none. It merges
// two update sources: results of explicit Login/Logout calls and async
// push notifications from the provider. Both go through the same
// setter, so the observable identity is always the most recently
// processed update (last write wins).
type Store struct {
	mu        sync.RWMutex
	provider  Provider
	current   *Identity
	listeners map[int]func(*Identity)
	nextID    int
	unsub     func()
}

// NewStore creates a session store subscribed to the given provider.
// provider may be nil when authentication is not configured; Login then
// fails with an AuthError and the store stays signed out.
func NewStore(provider Provider) *Store {
	s := &Store{
		provider:  provider,
		listeners: make(map[int]func(*Identity)),
	}
	if provider != nil {
		s.unsub = provider.Subscribe(s.set)
	}
	return s
}

// Current returns the current identity, or nil when signed out.
func (s *Store) Current() *Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// OnChange registers a listener invoked after every identity change.
// The returned function unregisters it; callers must invoke it on
// teardown so listeners do not leak.
func (s *Store) OnChange(fn func(*Identity)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Login delegates to the provider in the requested mode. On success the
// identity becomes current and listeners fire. The returned error is an
// *AuthError carrying the provider message for verbatim display.
func (s *Store) Login(ctx context.Context, req LoginRequest) (*Identity, error) {
	if s.provider == nil {
		return nil, &AuthError{Message: "authentication is not configured"}
	}

	var ident *Identity
	var err error
	switch req.Mode {
	case ModeSignUp:
		ident, err = s.provider.SignUp(ctx, req.Email, req.Password, req.DisplayName)
	default:
		ident, err = s.provider.SignIn(ctx, req.Email, req.Password)
	}
	if err != nil {
		return nil, err
	}

	s.set(ident)
	return ident, nil
}

// Logout signs out with the provider and clears the local identity.
// The local state is cleared even when the provider call fails, so the
// client never keeps a session the user asked to end.
func (s *Store) Logout(ctx context.Context) error {
	var err error
	if s.provider != nil {
		err = s.provider.SignOut(ctx)
	}
	s.set(nil)
	return err
}

// Close releases the provider subscription.
func (s *Store) Close() {
	if s.unsub != nil {
		s.unsub()
		s.unsub = nil
	}
}

func (s *Store) set(ident *Identity) {
	s.mu.Lock()
	s.current = ident
	fns := make([]func(*Identity), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(ident)
	}
}
