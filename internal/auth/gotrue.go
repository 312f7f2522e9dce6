package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// GoTrueProvider implements Provider against a Supabase GoTrue-style
// HTTP API. It pushes a notification to subscribers after every
// successful sign-in and sign-out, mirroring the provider's own
// auth-state change stream.
type GoTrueProvider struct {
	baseURL string
	apiKey  string
	http    *http.Client

	mu          sync.Mutex
	accessToken string
	subscribers map[int]func(*Identity)
	nextSub     int
}

var _ Provider = (*GoTrueProvider)(nil)

// NewGoTrueProvider creates a provider for the configured endpoint.
func NewGoTrueProvider(cfg Config) (*GoTrueProvider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &GoTrueProvider{
		baseURL:     strings.TrimRight(cfg.URL, "/"),
		apiKey:      cfg.APIKey,
		http:        &http.Client{Timeout: cfg.Timeout},
		subscribers: make(map[int]func(*Identity)),
	}, nil
}

type gotrueUser struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		FullName string `json:"full_name"`
	} `json:"user_metadata"`
}

type gotrueSession struct {
	AccessToken string      `json:"access_token"`
	User        *gotrueUser `json:"user"`
}

type gotrueError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
}

func (e gotrueError) message() string {
	switch {
	case e.ErrorDescription != "":
		return e.ErrorDescription
	case e.Msg != "":
		return e.Msg
	case e.Error != "":
		return e.Error
	}
	return ""
}

func (p *GoTrueProvider) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	body := map[string]string{"email": email, "password": password}
	sess, err := p.postSession(ctx, "/auth/v1/token?grant_type=password", body)
	if err != nil {
		return nil, err
	}
	return p.establish(sess)
}

func (p *GoTrueProvider) SignUp(ctx context.Context, email, password, displayName string) (*Identity, error) {
	body := map[string]any{
		"email":    email,
		"password": password,
		"data":     map[string]string{"full_name": displayName},
	}
	sess, err := p.postSession(ctx, "/auth/v1/signup", body)
	if err != nil {
		return nil, err
	}
	return p.establish(sess)
}

func (p *GoTrueProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	token := p.accessToken
	p.accessToken = ""
	p.mu.Unlock()

	defer p.notify(nil)

	if token == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/auth/v1/logout", nil)
	if err != nil {
		return &AuthError{Message: err.Error(), Err: err}
	}
	req.Header.Set("apikey", p.apiKey)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := p.http.Do(req)
	if err != nil {
		return &AuthError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return p.errorFrom(resp)
	}
	return nil
}

// Subscribe registers fn for auth-state notifications.
func (p *GoTrueProvider) Subscribe(fn func(*Identity)) (unsubscribe func()) {
	p.mu.Lock()
	id := p.nextSub
	p.nextSub++
	p.subscribers[id] = fn
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.subscribers, id)
		p.mu.Unlock()
	}
}

func (p *GoTrueProvider) postSession(ctx context.Context, path string, body any) (*gotrueSession, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &AuthError{Message: err.Error(), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, &AuthError{Message: err.Error(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", p.apiKey)

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, &AuthError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, p.errorFrom(resp)
	}

	var sess gotrueSession
	if err := json.NewDecoder(resp.Body).Decode(&sess); err != nil {
		return nil, &AuthError{Message: "malformed auth response", Err: err}
	}
	if sess.User == nil || sess.User.ID == "" {
		return nil, &AuthError{Message: "auth response carried no user"}
	}
	return &sess, nil
}

// establish stores the session token and pushes the new identity to
// subscribers.
func (p *GoTrueProvider) establish(sess *gotrueSession) (*Identity, error) {
	ident := &Identity{
		ID:          sess.User.ID,
		DisplayName: sess.User.UserMetadata.FullName,
		Email:       sess.User.Email,
	}

	p.mu.Lock()
	p.accessToken = sess.AccessToken
	p.mu.Unlock()

	p.notify(ident)
	return ident, nil
}

func (p *GoTrueProvider) notify(ident *Identity) {
	p.mu.Lock()
	fns := make([]func(*Identity), 0, len(p.subscribers))
	for _, fn := range p.subscribers {
		fns = append(fns, fn)
	}
	p.mu.Unlock()

	for _, fn := range fns {
		fn(ident)
	}
}

func (p *GoTrueProvider) errorFrom(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var ge gotrueError
	if err := json.Unmarshal(raw, &ge); err == nil {
		if msg := ge.message(); msg != "" {
			return &AuthError{Message: msg}
		}
	}
	return &AuthError{Message: fmt.Sprintf("auth provider returned status %d", resp.StatusCode)}
}
