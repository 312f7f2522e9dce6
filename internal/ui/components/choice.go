package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adityab/healthpredict/internal/ui/theme"
)

// Choice is a horizontal single-select control.
type Choice struct {
	Label    string
	Options  []string
	Selected int
	focused  bool
}

// NewChoice creates a choice with the first option selected.
func NewChoice(label string, options []string) Choice {
	return Choice{Label: label, Options: options}
}

// SetFocus marks the choice as the focused control.
func (c *Choice) SetFocus(focused bool) {
	c.focused = focused
}

// Update cycles through options with left/right while focused.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	if !c.focused {
		return c, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}
	switch kmsg.String() {
	case "left", "h":
		if c.Selected > 0 {
			c.Selected--
		}
	case "right", "l":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	}
	return c, nil
}

// Value returns the selected option.
func (c Choice) Value() string {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return ""
	}
	return c.Options[c.Selected]
}

// View renders the label and the option row.
func (c Choice) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if c.focused {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	parts := make([]string, 0, len(c.Options))
	for i, opt := range c.Options {
		if i == c.Selected {
			parts = append(parts, theme.Selected.Render("("+opt+")"))
		} else {
			parts = append(parts, theme.Unselected.Render(" "+opt+" "))
		}
	}
	return labelStyle.Render(c.Label) + "\n" + strings.Join(parts, "  ")
}
