package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adityab/healthpredict/internal/ui/theme"
)

// Toggle is a labeled on/off checkbox.
type Toggle struct {
	Label   string
	Checked bool
	focused bool
}

// NewToggle creates a toggle in the off state.
func NewToggle(label string) Toggle {
	return Toggle{Label: label}
}

// SetFocus marks the toggle as the focused control.
func (t *Toggle) SetFocus(focused bool) {
	t.focused = focused
}

// Update flips the toggle on space or enter while focused.
func (t Toggle) Update(msg tea.Msg) (Toggle, tea.Cmd) {
	if !t.focused {
		return t, nil
	}
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case " ", "space", "enter":
			t.Checked = !t.Checked
		}
	}
	return t, nil
}

// View renders the toggle.
func (t Toggle) View() string {
	box := "[ ]"
	if t.Checked {
		box = "[x]"
	}

	style := lipgloss.NewStyle().Foreground(theme.Text)
	if t.focused {
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	return style.Render(box + " " + t.Label)
}
