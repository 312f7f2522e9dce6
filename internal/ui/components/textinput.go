package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adityab/healthpredict/internal/ui/theme"
)

// Field wraps bubbles/textinput with a label and focus styling.
type Field struct {
	Model       textinput.Model
	Label       string
	NumericOnly bool
	Masked      bool
}

// NewField creates a labeled text input.
func NewField(label, placeholder string, charLimit int) Field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return Field{Model: ti, Label: label}
}

// NewPasswordField creates a masked text input.
func NewPasswordField(label string) Field {
	f := NewField(label, "", 64)
	f.Masked = true
	f.Model.EchoMode = textinput.EchoPassword
	return f
}

// Focus gives the field keyboard focus.
func (f *Field) Focus() tea.Cmd {
	return f.Model.Focus()
}

// Blur removes keyboard focus.
func (f *Field) Blur() {
	f.Model.Blur()
}

// Focused reports whether the field has focus.
func (f Field) Focused() bool {
	return f.Model.Focused()
}

// Update handles messages.
func (f Field) Update(msg tea.Msg) (Field, tea.Cmd) {
	if f.NumericOnly {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			key := kmsg.String()
			if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
				return f, nil
			}
		}
	}

	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

// View renders the label and input on two lines.
func (f Field) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if f.Focused() {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	return labelStyle.Render(f.Label) + "\n" + f.Model.View()
}

// Value returns the current input value.
func (f Field) Value() string {
	return f.Model.Value()
}
