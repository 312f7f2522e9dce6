package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adityab/healthpredict/internal/ui/theme"
)

// MultiSelect is a vertical list where any number of items can be checked.
type MultiSelect struct {
	Label   string
	Options []string
	Checked []bool
	Cursor  int
	focused bool
}

// NewMultiSelect creates a multi-select with nothing checked.
func NewMultiSelect(label string, options []string) MultiSelect {
	return MultiSelect{
		Label:   label,
		Options: options,
		Checked: make([]bool, len(options)),
	}
}

// SetFocus marks the list as the focused control.
func (m *MultiSelect) SetFocus(focused bool) {
	m.focused = focused
}

// Update handles cursor movement and toggling while focused.
func (m MultiSelect) Update(msg tea.Msg) (MultiSelect, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case " ", "space":
		if m.Cursor >= 0 && m.Cursor < len(m.Checked) {
			m.Checked[m.Cursor] = !m.Checked[m.Cursor]
		}
	}
	return m, nil
}

// Values returns the checked options in list order.
func (m MultiSelect) Values() []string {
	picked := []string{}
	for i, on := range m.Checked {
		if on {
			picked = append(picked, m.Options[i])
		}
	}
	return picked
}

// View renders the label and the checkable list.
func (m MultiSelect) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if m.focused {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	s := labelStyle.Render(m.Label) + "\n"
	for i, opt := range m.Options {
		box := "[ ]"
		if m.Checked[i] {
			box = "[x]"
		}

		prefix := "  "
		line := box + " " + opt
		if m.focused && i == m.Cursor {
			s += theme.Selected.Render("▸ "+line) + "\n"
			continue
		}
		if m.Checked[i] {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(prefix+line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(prefix+line) + "\n"
		}
	}
	return s
}
