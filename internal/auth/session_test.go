package auth

import (
	"context"
	"errors"
	"testing"
)

func TestLogin_SignInSetsCurrentAndNotifies(t *testing.T) {
	provider := NewMockProvider()
	provider.Identities["a@b.com"] = &Identity{ID: "u1", Email: "a@b.com"}

	store := NewStore(provider)
	defer store.Close()

	var seen []*Identity
	unsub := store.OnChange(func(id *Identity) { seen = append(seen, id) })
	defer unsub()

	ident, err := store.Login(context.Background(), LoginRequest{
		Mode:     ModeSignIn,
		Email:    "a@b.com",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if ident.ID != "u1" {
		t.Errorf("identity ID = %q, want u1", ident.ID)
	}
	if cur := store.Current(); cur == nil || cur.ID != "u1" {
		t.Errorf("Current() = %+v, want u1", cur)
	}
	if len(seen) == 0 || seen[len(seen)-1].ID != "u1" {
		t.Errorf("listener saw %v, want final u1", seen)
	}
}

func TestLogin_SignUpCarriesDisplayName(t *testing.T) {
	provider := NewMockProvider()
	store := NewStore(provider)
	defer store.Close()

	ident, err := store.Login(context.Background(), LoginRequest{
		Mode:        ModeSignUp,
		Email:       "new@b.com",
		Password:    "secret",
		DisplayName: "New User",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if ident.DisplayName != "New User" {
		t.Errorf("DisplayName = %q, want New User", ident.DisplayName)
	}
	if provider.SignUpCalls != 1 {
		t.Errorf("SignUpCalls = %d, want 1", provider.SignUpCalls)
	}
}

func TestLogin_ProviderMessageSurfacesVerbatim(t *testing.T) {
	provider := NewMockProvider()
	provider.FailWith = "Email rate limit exceeded"

	store := NewStore(provider)
	defer store.Close()

	_, err := store.Login(context.Background(), LoginRequest{Mode: ModeSignIn, Email: "a@b.com"})
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("error = %v, want *AuthError", err)
	}
	if authErr.Message != "Email rate limit exceeded" {
		t.Errorf("Message = %q, want provider message verbatim", authErr.Message)
	}
	if store.Current() != nil {
		t.Error("failed login must not set an identity")
	}
}

func TestLogout_ClearsLocalStateEvenOnProviderFailure(t *testing.T) {
	provider := NewMockProvider()
	provider.Identities["a@b.com"] = &Identity{ID: "u1", Email: "a@b.com"}
	provider.SignOutErr = errors.New("network down")

	store := NewStore(provider)
	defer store.Close()

	if _, err := store.Login(context.Background(), LoginRequest{Mode: ModeSignIn, Email: "a@b.com"}); err != nil {
		t.Fatalf("login: %v", err)
	}

	err := store.Logout(context.Background())
	if err == nil {
		t.Error("expected provider error to propagate")
	}
	if store.Current() != nil {
		t.Error("local identity must be cleared even when sign-out fails")
	}
}

func TestStore_PushNotificationsAreLastWriteWins(t *testing.T) {
	provider := NewMockProvider()
	store := NewStore(provider)
	defer store.Close()

	provider.Push(&Identity{ID: "u1"})
	provider.Push(&Identity{ID: "u2"})
	if cur := store.Current(); cur == nil || cur.ID != "u2" {
		t.Errorf("Current() = %+v, want u2", cur)
	}

	// A push can also clear the session (remote logout).
	provider.Push(nil)
	if store.Current() != nil {
		t.Error("Current() should be nil after a nil push")
	}
}

func TestStore_CloseStopsProviderNotifications(t *testing.T) {
	provider := NewMockProvider()
	store := NewStore(provider)

	store.Close()
	provider.Push(&Identity{ID: "u1"})
	if store.Current() != nil {
		t.Error("closed store must not observe provider pushes")
	}
}

func TestOnChange_UnsubscribeStopsDelivery(t *testing.T) {
	provider := NewMockProvider()
	store := NewStore(provider)
	defer store.Close()

	calls := 0
	unsub := store.OnChange(func(*Identity) { calls++ })
	provider.Push(&Identity{ID: "u1"})
	unsub()
	provider.Push(&Identity{ID: "u2"})

	if calls != 1 {
		t.Errorf("listener calls = %d, want 1", calls)
	}
}

func TestLogin_WithoutProviderFailsWithAuthError(t *testing.T) {
	store := NewStore(nil)
	defer store.Close()

	_, err := store.Login(context.Background(), LoginRequest{Mode: ModeSignIn})
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("error = %v, want *AuthError", err)
	}
}
