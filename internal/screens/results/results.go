package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adityab/healthpredict/internal/predict"
	"github.com/adityab/healthpredict/internal/router"
	"github.com/adityab/healthpredict/internal/screen"
	"github.com/adityab/healthpredict/internal/ui/layout"
	"github.com/adityab/healthpredict/internal/ui/theme"
)

const barWidth = 24

// ResultsScreen presents one prediction result.
type ResultsScreen struct {
	result *predict.Result
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for the given result.
func New(result *predict.Result) *ResultsScreen {
	return &ResultsScreen{result: result}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Retake"},
		{Key: "Esc", Description: "Home"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "r", "R":
			return s, func() tea.Msg {
				return router.NavigateMsg{Action: router.ActionRetake}
			}
		}
	}
	return s, nil
}

// probabilityBar renders one labeled bar scaled to barWidth.
func probabilityBar(label string, p float64) string {
	filled := int(p*barWidth + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	return fmt.Sprintf("%-8s %s %5.1f%%",
		label,
		lipgloss.NewStyle().Foreground(theme.RiskColor(label)).Render(bar),
		p*100,
	)
}

func (s *ResultsScreen) View(width, height int) string {
	r := s.result
	if r == nil {
		return layout.Centered(theme.Hint.Render("No result to show."), width, height)
	}

	levelStyle := lipgloss.NewStyle().
		Foreground(theme.RiskColor(string(r.Prediction))).
		Bold(true)

	sections := []string{
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Assessment Result"),
		"",
		"Risk level:  " + levelStyle.Render(string(r.Prediction)),
		fmt.Sprintf("Risk score:  %.1f / 100", r.RiskScore),
		"",
	}

	// Bars in severity order; labels absent from the map render empty.
	for _, level := range predict.RiskLevels {
		sections = append(sections, probabilityBar(string(level), r.Probabilities[string(level)]))
	}

	if len(r.SuggestedSteps) > 0 {
		sections = append(sections, "", theme.Body.Bold(true).Render("Suggested steps"))
		for _, step := range r.SuggestedSteps {
			sections = append(sections, "  • "+step)
		}
	}

	if r.DoctorConsult != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Warning).Render(r.DoctorConsult))
	}

	card := theme.Card.Render(strings.Join(sections, "\n"))
	return layout.Centered(card, width, height)
}
