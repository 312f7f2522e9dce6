package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestGoTrueProvider(t *testing.T, handler http.HandlerFunc) *GoTrueProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewGoTrueProvider(Config{
		URL:     server.URL,
		APIKey:  "test-anon-key",
		Timeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

func sessionBody(id, email, fullName string) map[string]any {
	return map[string]any{
		"access_token": "token-123",
		"user": map[string]any{
			"id":    id,
			"email": email,
			"user_metadata": map[string]any{
				"full_name": fullName,
			},
		},
	}
}

func TestGoTrueSignIn_HappyPath(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/token" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("grant_type") != "password" {
			t.Errorf("expected grant_type=password, got %q", r.URL.RawQuery)
		}
		if r.Header.Get("apikey") != "test-anon-key" {
			t.Errorf("missing apikey header")
		}

		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body["email"] != "a@b.com" || body["password"] != "secret" {
			t.Errorf("unexpected credentials: %v", body)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sessionBody("user-1", "a@b.com", "Ada"))
	}

	p := newTestGoTrueProvider(t, handler)

	var notified *Identity
	p.Subscribe(func(ident *Identity) { notified = ident })

	ident, err := p.SignIn(context.Background(), "a@b.com", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ident.ID != "user-1" || ident.Email != "a@b.com" || ident.DisplayName != "Ada" {
		t.Fatalf("unexpected identity: %+v", ident)
	}
	if notified == nil || notified.ID != "user-1" {
		t.Fatalf("expected subscriber notification, got %+v", notified)
	}
}

func TestGoTrueSignUp_SendsFullName(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/signup" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}

		var body struct {
			Email string            `json:"email"`
			Data  map[string]string `json:"data"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body.Data["full_name"] != "Grace Hopper" {
			t.Errorf("expected full_name in data, got %v", body.Data)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sessionBody("user-2", body.Email, "Grace Hopper"))
	}

	p := newTestGoTrueProvider(t, handler)
	ident, err := p.SignUp(context.Background(), "g@h.com", "pw", "Grace Hopper")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ident.DisplayName != "Grace Hopper" {
		t.Fatalf("expected display name, got %q", ident.DisplayName)
	}
}

func TestGoTrueSignIn_ProviderMessageVerbatim(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"error_description": "Invalid login credentials",
		})
	}

	p := newTestGoTrueProvider(t, handler)
	_, err := p.SignIn(context.Background(), "a@b.com", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}

	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected *AuthError, got %T", err)
	}
	if authErr.Message != "Invalid login credentials" {
		t.Fatalf("expected provider message verbatim, got %q", authErr.Message)
	}
}

func TestGoTrueSignOut_NotifiesEvenOnFailure(t *testing.T) {
	signIn := true
	handler := func(w http.ResponseWriter, r *http.Request) {
		if signIn {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(sessionBody("user-1", "a@b.com", ""))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}

	p := newTestGoTrueProvider(t, handler)

	var last *Identity
	gotNil := false
	p.Subscribe(func(ident *Identity) {
		last = ident
		if ident == nil {
			gotNil = true
		}
	})

	if _, err := p.SignIn(context.Background(), "a@b.com", "pw"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	signIn = false
	if err := p.SignOut(context.Background()); err == nil {
		t.Fatal("expected error from failing logout endpoint")
	}
	if !gotNil || last != nil {
		t.Fatalf("expected nil notification after sign-out, last=%+v", last)
	}
}

func TestGoTrueSignOut_WithoutSessionIsLocal(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected without an access token")
	}

	p := newTestGoTrueProvider(t, handler)
	if err := p.SignOut(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGoTrueSignIn_ResponseWithoutUser(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"access_token": "t"})
	}

	p := newTestGoTrueProvider(t, handler)
	_, err := p.SignIn(context.Background(), "a@b.com", "pw")
	if err == nil {
		t.Fatal("expected error for session without user")
	}
}
