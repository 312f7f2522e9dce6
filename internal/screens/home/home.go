package home

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

// HomeScreen is the landing screen of the application.
type HomeScreen struct {
	session *auth.Store
	menu    components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen. Menu items reflect the identity that is
// current at build time; the app model rebuilds the screen on every
// transition back to Home.
func New(session *auth.Store) *HomeScreen {
	signedIn := session != nil && session.Current() != nil

	items := []components.MenuItem{
		{Label: "Start Assessment", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.NavigateMsg{Action: router.ActionStartAssessment}
			}
		}},
		{Label: "History", Disabled: !signedIn, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.NavigateMsg{Action: router.ActionNavigateHistory}
			}
		}},
	}

	if signedIn {
		items = append(items, components.MenuItem{Label: "Sign Out", Action: func() tea.Cmd {
			return func() tea.Msg {
				// Local state is cleared even when the provider call
				// fails, so the transition always happens.
				_ = session.Logout(context.Background())
				return router.NavigateMsg{Action: router.ActionLogoutCompleted}
			}
		}})
	} else {
		items = append(items, components.MenuItem{Label: "Sign In", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.NavigateMsg{Action: router.ActionSignInRequested}
			}
		}})
	}

	items = append(items, components.MenuItem{Label: "Exit", Action: func() tea.Cmd {
		return tea.Quit
	}})

	return &HomeScreen{
		session: session,
		menu:    components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Health Risk Assessment")

	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Answer a short questionnaire to estimate your health risk.")

	var note string
	if h.session == nil || h.session.Current() == nil {
		note = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("Sign in to save assessments and view your history.")
	}

	sections := []string{title, subtitle, "", h.menu.View()}
	if note != "" {
		sections = append(sections, note)
	}

	card := theme.Card.Render(strings.Join(sections, "\n"))
	return layout.Centered(card, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
