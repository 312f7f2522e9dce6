package auth

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adityab/healthpredict/internal/auth"
	"github.com/adityab/healthpredict/internal/router"
	"github.com/adityab/healthpredict/internal/screen"
	"github.com/adityab/healthpredict/internal/ui/components"
	"github.com/adityab/healthpredict/internal/ui/layout"
	"github.com/adityab/healthpredict/internal/ui/theme"
)

type loginResultMsg struct {
	ident *auth.Identity
	err   error
}

// AuthScreen handles sign-in and sign-up against the session store.
type AuthScreen struct {
	session *auth.Store

	mode     auth.LoginMode
	email    components.Field
	password components.Field
	name     components.Field
	focus    int

	submitting bool
	errMsg     string
}

var _ screen.Screen = (*AuthScreen)(nil)
var _ screen.KeyHintProvider = (*AuthScreen)(nil)

// New creates a new AuthScreen in sign-in mode.
func New(session *auth.Store) *AuthScreen {
	s := &AuthScreen{
		session:  session,
		mode:     auth.ModeSignIn,
		email:    components.NewField("Email", "you@example.com", 64),
		password: components.NewPasswordField("Password"),
		name:     components.NewField("Full Name", "", 64),
	}
	return s
}

func (s *AuthScreen) Init() tea.Cmd {
	return s.email.Focus()
}

func (s *AuthScreen) Title() string {
	if s.mode == auth.ModeSignUp {
		return "Sign Up"
	}
	return "Sign In"
}

func (s *AuthScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+T", Description: "Toggle sign-in/up"},
		{Key: "Esc", Description: "Home"},
	}
}

// fieldCount returns the number of focusable fields for the current mode.
func (s *AuthScreen) fieldCount() int {
	if s.mode == auth.ModeSignUp {
		return 3
	}
	return 2
}

func (s *AuthScreen) applyFocus() tea.Cmd {
	s.email.Blur()
	s.password.Blur()
	s.name.Blur()
	switch s.focus {
	case 0:
		return s.email.Focus()
	case 1:
		return s.password.Focus()
	default:
		return s.name.Focus()
	}
}

func (s *AuthScreen) submit() tea.Cmd {
	req := auth.LoginRequest{
		Mode:        s.mode,
		Email:       strings.TrimSpace(s.email.Value()),
		Password:    s.password.Value(),
		DisplayName: strings.TrimSpace(s.name.Value()),
	}
	store := s.session
	return func() tea.Msg {
		ident, err := store.Login(context.Background(), req)
		return loginResultMsg{ident: ident, err: err}
	}
}

func (s *AuthScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		s.submitting = false
		if msg.err != nil {
			// Provider message shown verbatim.
			s.errMsg = msg.err.Error()
			return s, nil
		}
		return s, func() tea.Msg {
			return router.NavigateMsg{Action: router.ActionLoginSucceeded}
		}

	case tea.KeyMsg:
		if s.submitting {
			return s, nil
		}
		switch msg.String() {
		case "tab", "down":
			s.focus = (s.focus + 1) % s.fieldCount()
			return s, s.applyFocus()
		case "shift+tab", "up":
			s.focus = (s.focus + s.fieldCount() - 1) % s.fieldCount()
			return s, s.applyFocus()
		case "ctrl+t":
			if s.mode == auth.ModeSignIn {
				s.mode = auth.ModeSignUp
			} else {
				s.mode = auth.ModeSignIn
				if s.focus >= s.fieldCount() {
					s.focus = 0
				}
			}
			s.errMsg = ""
			return s, s.applyFocus()
		case "enter":
			s.submitting = true
			s.errMsg = ""
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case 0:
		s.email, cmd = s.email.Update(msg)
	case 1:
		s.password, cmd = s.password.Update(msg)
	default:
		s.name, cmd = s.name.Update(msg)
	}
	return s, cmd
}

func (s *AuthScreen) View(width, height int) string {
	heading := "Sign in to your account"
	toggleHint := "No account yet? Press Ctrl+T to sign up."
	if s.mode == auth.ModeSignUp {
		heading = "Create a new account"
		toggleHint = "Already registered? Press Ctrl+T to sign in."
	}

	sections := []string{
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(heading),
		"",
		s.email.View(),
		"",
		s.password.View(),
	}
	if s.mode == auth.ModeSignUp {
		sections = append(sections, "", s.name.View())
	}

	if s.submitting {
		sections = append(sections, "", theme.Hint.Render("Signing in..."))
	}
	if s.errMsg != "" {
		sections = append(sections, "", theme.ErrorBanner.Render(s.errMsg))
	}

	sections = append(sections, "", theme.Hint.Render(toggleHint))

	card := theme.Card.Width(46).Render(strings.Join(sections, "\n"))
	return layout.Centered(card, width, height)
}
