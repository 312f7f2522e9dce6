package form

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adityab/healthpredict/internal/auth"
	"github.com/adityab/healthpredict/internal/predict"
	"github.com/adityab/healthpredict/internal/screen"
	"github.com/adityab/healthpredict/internal/ui/components"
	"github.com/adityab/healthpredict/internal/ui/layout"
	"github.com/adityab/healthpredict/internal/ui/theme"
)

// SubmittedMsg carries the workflow result back to the app model. It is
// emitted once per submission, on the real and fallback paths alike.
type SubmittedMsg struct {
	Result *predict.Result
}

// Focus order of the form controls.
const (
	focusAge = iota
	focusGender
	focusSymptoms
	focusSmoking
	focusExercise
	focusBP
	focusSugar
	focusSubmit
	focusCount
)

// FormScreen collects one questionnaire and submits it through the
// prediction workflow.
type FormScreen struct {
	session  *auth.Store
	workflow *predict.Workflow

	age      components.Field
	gender   components.Choice
	symptoms components.MultiSelect
	smoking  components.Toggle
	exercise components.Toggle
	bp       components.Field
	sugar    components.Field

	focus   int
	loading bool
	spin    spinner.Model
}

var _ screen.Screen = (*FormScreen)(nil)
var _ screen.KeyHintProvider = (*FormScreen)(nil)

// New creates a FormScreen with a blank questionnaire. The app model
// constructs a fresh screen on every entry, so no answers carry over
// between assessments.
func New(session *auth.Store, workflow *predict.Workflow) *FormScreen {
	genders := make([]string, len(predict.Genders))
	for i, g := range predict.Genders {
		genders[i] = string(g)
	}

	labels := make([]string, len(predict.Symptoms))
	for i, s := range predict.Symptoms {
		labels[i] = strings.ReplaceAll(s, "_", " ")
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	f := &FormScreen{
		session:  session,
		workflow: workflow,
		age:      components.NewField("Age", "25", 3),
		gender:   components.NewChoice("Gender", genders),
		symptoms: components.NewMultiSelect("Symptoms", labels),
		smoking:  components.NewToggle("Regular smoker"),
		exercise: components.NewToggle("Regular exercise"),
		bp:       components.NewField("Blood pressure (optional)", "120/80", 16),
		sugar:    components.NewField("Sugar level (optional)", "95 mg/dL", 16),
		spin:     sp,
	}
	f.age.NumericOnly = true
	return f
}

func (f *FormScreen) Init() tea.Cmd {
	f.focus = focusAge
	return f.applyFocus()
}

func (f *FormScreen) Title() string {
	return "Assessment"
}

func (f *FormScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Space", Description: "Toggle"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Home"},
	}
}

// questionnaire assembles the submission from the current control state.
// Symptom labels are mapped back to the wire vocabulary by position.
func (f *FormScreen) questionnaire() predict.Questionnaire {
	picked := []string{}
	for i, on := range f.symptoms.Checked {
		if on {
			picked = append(picked, predict.Symptoms[i])
		}
	}

	return predict.Questionnaire{
		Age:           predict.ParseAge(f.age.Value()),
		Gender:        predict.Gender(f.gender.Value()),
		Symptoms:      picked,
		Smoking:       f.smoking.Checked,
		Exercise:      f.exercise.Checked,
		BloodPressure: strings.TrimSpace(f.bp.Value()),
		SugarLevel:    strings.TrimSpace(f.sugar.Value()),
	}
}

func (f *FormScreen) applyFocus() tea.Cmd {
	f.age.Blur()
	f.bp.Blur()
	f.sugar.Blur()
	f.gender.SetFocus(f.focus == focusGender)
	f.symptoms.SetFocus(f.focus == focusSymptoms)
	f.smoking.SetFocus(f.focus == focusSmoking)
	f.exercise.SetFocus(f.focus == focusExercise)

	switch f.focus {
	case focusAge:
		return f.age.Focus()
	case focusBP:
		return f.bp.Focus()
	case focusSugar:
		return f.sugar.Focus()
	}
	return nil
}

func (f *FormScreen) submit() tea.Cmd {
	q := f.questionnaire()
	ident := f.session.Current()
	wf := f.workflow
	return tea.Batch(
		f.spin.Tick,
		func() tea.Msg {
			result := wf.Submit(context.Background(), q, ident)
			return SubmittedMsg{Result: result}
		},
	)
}

func (f *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if f.loading {
		// The submission chain runs to completion; nothing else is
		// accepted until the result message arrives.
		var cmd tea.Cmd
		f.spin, cmd = f.spin.Update(msg)
		return f, cmd
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab":
			f.focus = (f.focus + 1) % focusCount
			return f, f.applyFocus()
		case "shift+tab":
			f.focus = (f.focus + focusCount - 1) % focusCount
			return f, f.applyFocus()
		case "enter":
			if f.focus == focusSubmit {
				f.loading = true
				return f, f.submit()
			}
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case focusAge:
		f.age, cmd = f.age.Update(msg)
	case focusGender:
		f.gender, cmd = f.gender.Update(msg)
	case focusSymptoms:
		f.symptoms, cmd = f.symptoms.Update(msg)
	case focusSmoking:
		f.smoking, cmd = f.smoking.Update(msg)
	case focusExercise:
		f.exercise, cmd = f.exercise.Update(msg)
	case focusBP:
		f.bp, cmd = f.bp.Update(msg)
	case focusSugar:
		f.sugar, cmd = f.sugar.Update(msg)
	}
	return f, cmd
}

func (f *FormScreen) View(width, height int) string {
	if f.loading {
		msg := f.spin.View() + " Assessing your answers..."
		return layout.Centered(theme.Card.Render(msg), width, height)
	}

	submitStyle := theme.Unselected
	submitLabel := "  Submit Assessment  "
	if f.focus == focusSubmit {
		submitStyle = lipgloss.NewStyle().
			Foreground(theme.Text).
			Background(theme.Primary).
			Bold(true)
	}

	left := strings.Join([]string{
		f.age.View(),
		"",
		f.gender.View(),
		"",
		f.smoking.View(),
		f.exercise.View(),
		"",
		f.bp.View(),
		"",
		f.sugar.View(),
	}, "\n")

	right := f.symptoms.View()

	columns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.NewStyle().Width(34).Render(left),
		lipgloss.NewStyle().Width(28).Render(right),
	)

	body := strings.Join([]string{
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Health Questionnaire"),
		"",
		columns,
		"",
		submitStyle.Render(submitLabel),
	}, "\n")

	return layout.Centered(theme.Card.Render(body), width, height)
}
