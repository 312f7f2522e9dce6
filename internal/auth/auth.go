package auth

import (
	"context"
	"fmt"
)

// Identity is the externally authenticated user handle. It is issued
// and revoked entirely by the auth provider; the client only observes
// current-identity-or-none and never persists or mutates it.
type Identity struct {
	ID          string
	DisplayName string
	Email       string
}

// LoginMode selects between the two provider sub-modes.
type LoginMode int

const (
	// ModeSignIn authenticates an existing account.
	ModeSignIn LoginMode = iota
	// ModeSignUp registers a new account; carries a display name.
	ModeSignUp
)

// LoginRequest describes one explicit login attempt.
type LoginRequest struct {
	Mode        LoginMode
	Email       string
	Password    string
	DisplayName string // sign-up only
}

// AuthError carries the provider-supplied message. The Auth screen
// presents Message verbatim.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("authentication failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// Provider is the external auth collaborator. Subscribe registers a
// listener for session changes pushed by the provider (login, logout,
// token refresh); the returned function removes the listener.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (*Identity, error)
	SignUp(ctx context.Context, email, password, displayName string) (*Identity, error)
	SignOut(ctx context.Context) error
	Subscribe(fn func(*Identity)) (unsubscribe func())
}
