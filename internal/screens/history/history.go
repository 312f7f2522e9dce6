package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adityab/healthpredict/internal/history"
	"github.com/adityab/healthpredict/internal/screen"
	"github.com/adityab/healthpredict/internal/store"
	"github.com/adityab/healthpredict/internal/ui/layout"
	"github.com/adityab/healthpredict/internal/ui/theme"
)

type loadedMsg struct {
	records []store.HistoryRecord
	trend   string
	err     error
}

// HistoryScreen lists past assessments for the signed-in identity.
type HistoryScreen struct {
	service    *history.Service
	identityID string

	records []store.HistoryRecord
	trend   string
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen for one identity.
func New(service *history.Service, identityID string) *HistoryScreen {
	return &HistoryScreen{service: service, identityID: identityID}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := s.service.Load(context.Background(), s.identityID)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{records: records, trend: s.service.Trend(records)}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Home"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(loadedMsg); ok {
		s.loaded = true
		if m.err != nil {
			s.errMsg = m.err.Error()
			return s, nil
		}
		s.records = m.records
		s.trend = m.trend
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if !s.loaded {
		return layout.Centered(theme.Hint.Render("Loading history..."), width, height)
	}
	if s.errMsg != "" {
		return layout.Centered(theme.ErrorBanner.Render(s.errMsg), width, height)
	}
	if len(s.records) == 0 {
		msg := theme.Hint.Render("No assessments yet. Complete one to start your history.")
		return layout.Centered(theme.Card.Render(msg), width, height)
	}

	sections := []string{
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Assessment History"),
		lipgloss.NewStyle().Foreground(theme.Warning).Render("Trend: " + s.trend),
		"",
	}

	for _, rec := range s.records {
		level := lipgloss.NewStyle().
			Foreground(theme.RiskColor(rec.PredictionLevel)).
			Bold(true).
			Render(fmt.Sprintf("%-6s", rec.PredictionLevel))

		line := fmt.Sprintf("%s  %s  score %5.1f",
			rec.CreatedAt.Format("2006-01-02 15:04"), level, rec.RiskScore)
		sections = append(sections, line)

		if len(rec.Metadata.Symptoms) > 0 {
			sections = append(sections, theme.Hint.Render(
				"    symptoms: "+strings.Join(rec.Metadata.Symptoms, ", ")))
		}
	}

	card := theme.Card.Render(strings.Join(sections, "\n"))
	return layout.Centered(card, width, height)
}
