package form

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/adityab/healthpredict/internal/auth"
	"github.com/adityab/healthpredict/internal/predict"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// runCmd executes a command tree and collects every produced message.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	var msgs []tea.Msg
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			msgs = append(msgs, runCmd(sub)...)
		}
	default:
		msgs = append(msgs, msg)
	}
	return msgs
}

func countSubmitted(msgs []tea.Msg) int {
	n := 0
	for _, msg := range msgs {
		if _, ok := msg.(SubmittedMsg); ok {
			n++
		}
	}
	return n
}

func testFormScreen(t *testing.T) (*FormScreen, *predict.MockClient) {
	t.Helper()

	client := predict.NewMockClient(
		predict.MockResponse{Result: &predict.Result{
			Prediction:     predict.RiskLow,
			RiskScore:      12.0,
			Probabilities:  map[string]float64{"Low": 0.8, "Medium": 0.15, "High": 0.05},
			SuggestedSteps: []string{"Keep it up"},
			DoctorConsult:  "No consult needed.",
		}},
		predict.MockResponse{Result: &predict.Result{
			Prediction:    predict.RiskHigh,
			RiskScore:     90.0,
			Probabilities: map[string]float64{"Low": 0.0, "Medium": 0.1, "High": 0.9},
		}},
	)
	workflow := predict.NewWorkflow(client, nil, nil)

	session := auth.NewStore(nil)
	t.Cleanup(session.Close)

	f := New(session, workflow)
	f.Init()
	return f, client
}

func TestSubmit_SecondSubmitBlockedWhileInFlight(t *testing.T) {
	f, client := testFormScreen(t)
	f.focus = focusSubmit

	_, cmd := f.Update(specialKey(tea.KeyEnter))
	if !f.loading {
		t.Fatal("expected loading state after submit")
	}

	msgs := runCmd(cmd)
	if got := countSubmitted(msgs); got != 1 {
		t.Fatalf("submitted messages = %d, want 1", got)
	}
	if client.CallCount() != 1 {
		t.Fatalf("predictor calls = %d, want 1", client.CallCount())
	}

	// A second enter while the first submission is outstanding must not
	// reach the workflow.
	_, cmd = f.Update(specialKey(tea.KeyEnter))
	msgs = runCmd(cmd)
	if got := countSubmitted(msgs); got != 0 {
		t.Errorf("submitted messages from second enter = %d, want 0", got)
	}
	if client.CallCount() != 1 {
		t.Errorf("predictor calls = %d, want 1", client.CallCount())
	}
	if !f.loading {
		t.Error("expected the screen to stay in loading state")
	}
}

func TestSubmit_EnterOffSubmitDoesNotSubmit(t *testing.T) {
	f, client := testFormScreen(t)
	f.focus = focusSmoking
	f.applyFocus()

	_, cmd := f.Update(specialKey(tea.KeyEnter))
	if f.loading {
		t.Fatal("enter on a toggle must not start a submission")
	}
	if got := countSubmitted(runCmd(cmd)); got != 0 {
		t.Errorf("submitted messages = %d, want 0", got)
	}
	if client.CallCount() != 0 {
		t.Errorf("predictor calls = %d, want 0", client.CallCount())
	}
	if !f.smoking.Checked {
		t.Error("expected the focused toggle to flip")
	}
}

func TestQuestionnaire_DefaultsAndSymptomMapping(t *testing.T) {
	f, _ := testFormScreen(t)

	f.symptoms.Checked[0] = true // fever
	f.symptoms.Checked[3] = true // shortness_of_breath

	q := f.questionnaire()
	if q.Age != predict.DefaultAge {
		t.Errorf("age = %d, want default %d", q.Age, predict.DefaultAge)
	}
	if q.Gender != predict.GenderMale {
		t.Errorf("gender = %q, want the first option", q.Gender)
	}
	if len(q.Symptoms) != 2 || q.Symptoms[0] != "fever" || q.Symptoms[1] != "shortness_of_breath" {
		t.Errorf("symptoms = %v, want wire-vocabulary names in list order", q.Symptoms)
	}
}
