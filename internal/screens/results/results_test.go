package results

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/adityab/healthpredict/internal/predict"
	"github.com/adityab/healthpredict/internal/router"
)

func TestProbabilityBar_ClampsOutOfRangeValues(t *testing.T) {
	tests := []struct {
		name       string
		p          float64
		wantFilled int
	}{
		{"negative", -0.2, 0},
		{"zero", 0, 0},
		{"half", 0.5, barWidth / 2},
		{"one", 1, barWidth},
		{"above one", 1.5, barWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := probabilityBar("Low", tt.p)
			if got := strings.Count(bar, "█"); got != tt.wantFilled {
				t.Errorf("filled cells = %d, want %d", got, tt.wantFilled)
			}
			if got := strings.Count(bar, "░"); got != barWidth-tt.wantFilled {
				t.Errorf("empty cells = %d, want %d", got, barWidth-tt.wantFilled)
			}
		})
	}
}

func TestView_ShowsResultFields(t *testing.T) {
	s := New(predict.Fallback())
	view := s.View(100, 40)

	for _, want := range []string{
		"Medium",
		"42.8",
		"Monitor blood pressure",
		"Consult a General Practitioner",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestRetakeKeyEmitsNavigation(t *testing.T) {
	s := New(predict.Fallback())

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected a command from the retake key")
	}
	msg, ok := cmd().(router.NavigateMsg)
	if !ok {
		t.Fatalf("expected a navigation message, got %T", cmd())
	}
	if msg.Action != router.ActionRetake {
		t.Errorf("action = %v, want %v", msg.Action, router.ActionRetake)
	}
}
