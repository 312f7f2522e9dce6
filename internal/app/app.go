package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adityab/healthpredict/internal/auth"
	"github.com/adityab/healthpredict/internal/history"
	"github.com/adityab/healthpredict/internal/predict"
	"github.com/adityab/healthpredict/internal/router"
	"github.com/adityab/healthpredict/internal/screen"
	authscreen "github.com/adityab/healthpredict/internal/screens/auth"
	"github.com/adityab/healthpredict/internal/screens/form"
	historyscreen "github.com/adityab/healthpredict/internal/screens/history"
	"github.com/adityab/healthpredict/internal/screens/home"
	"github.com/adityab/healthpredict/internal/screens/results"
	"github.com/adityab/healthpredict/internal/ui/layout"
	"github.com/adityab/healthpredict/internal/ui/theme"
)

// identityChangedMsg is delivered whenever the session store reports an
// identity change, including changes pushed by the provider.
type identityChangedMsg struct {
	ident *auth.Identity
}

// AppModel is the root Bubble Tea model. It owns the view-state machine
// and builds a fresh screen on every transition.
type AppModel struct {
	session    *auth.Store
	workflow   *predict.Workflow
	historySvc *history.Service

	state      router.ViewState
	active     screen.Screen
	lastResult *predict.Result

	width  int
	height int
}

// newAppModel creates the root model starting at Home.
func newAppModel(session *auth.Store, workflow *predict.Workflow, historySvc *history.Service) AppModel {
	m := AppModel{
		session:    session,
		workflow:   workflow,
		historySvc: historySvc,
		state:      router.StateHome,
	}
	m.active = m.buildScreen(router.StateHome)
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.active.Init()
}

// buildScreen constructs the screen for a view state.
func (m *AppModel) buildScreen(state router.ViewState) screen.Screen {
	switch state {
	case router.StateAuth:
		return authscreen.New(m.session)
	case router.StateForm:
		return form.New(m.session, m.workflow)
	case router.StateResults:
		return results.New(m.lastResult)
	case router.StateHistory:
		identityID := ""
		if ident := m.session.Current(); ident != nil {
			identityID = ident.ID
		}
		return historyscreen.New(m.historySvc, identityID)
	default:
		return home.New(m.session)
	}
}

// apply resolves one action through the view machine. Unlisted pairs
// leave the model untouched.
func (m AppModel) apply(action router.Action) (AppModel, tea.Cmd) {
	next, ok := router.Next(m.state, action, m.session.Current() != nil)
	if !ok {
		return m, nil
	}
	m.state = next
	m.active = m.buildScreen(next)
	return m, m.active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case identityChangedMsg:
		if msg.ident == nil {
			return m.apply(router.ActionLogoutCompleted)
		}
		if m.state == router.StateHome {
			// Rebuild so the menu reflects the new identity.
			m.active = m.buildScreen(router.StateHome)
		}
		return m, nil

	case router.NavigateMsg:
		return m.apply(msg.Action)

	case form.SubmittedMsg:
		m.lastResult = msg.Result
		return m.apply(router.ActionSubmitSucceeded)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.state != router.StateHome {
				return m.apply(router.ActionNavigateHome)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.active, cmd = m.active.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render produces the full frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	ident := m.session.Current()
	account := ""
	if ident != nil {
		account = ident.Email
	}

	header := layout.RenderHeader(m.active.Title(), account, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := m.active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	var content string
	if m.state == router.StateHistory && ident == nil {
		// Identity can vanish while History is on screen. The guard is
		// checked on every render, not only on transition.
		notice := theme.Hint.Render("Signed out. History is unavailable.")
		content = layout.Centered(notice, m.width, contentHeight)
	} else {
		content = m.active.View(m.width, contentHeight)
	}

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and forwards provider identity
// changes into it.
func Run(session *auth.Store, workflow *predict.Workflow, historySvc *history.Service) error {
	p := tea.NewProgram(newAppModel(session, workflow, historySvc))

	unsubscribe := session.OnChange(func(ident *auth.Identity) {
		p.Send(identityChangedMsg{ident: ident})
	})
	defer unsubscribe()

	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
