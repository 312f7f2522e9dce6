package router

import "testing"

func TestNext_ListedTransitions(t *testing.T) {
	tests := []struct {
		name     string
		from     ViewState
		action   Action
		signedIn bool
		want     ViewState
	}{
		{"home start signed in", StateHome, ActionStartAssessment, true, StateForm},
		{"home start signed out", StateHome, ActionStartAssessment, false, StateAuth},
		{"home to history signed in", StateHome, ActionNavigateHistory, true, StateHistory},
		{"auth login succeeded", StateAuth, ActionLoginSucceeded, true, StateHome},
		{"form submit succeeded", StateForm, ActionSubmitSucceeded, true, StateResults},
		{"form submit succeeded signed out", StateForm, ActionSubmitSucceeded, false, StateResults},
		{"results retake", StateResults, ActionRetake, true, StateForm},
		{"home navigate home", StateHome, ActionNavigateHome, false, StateHome},
		{"results navigate home", StateResults, ActionNavigateHome, true, StateHome},
		{"history navigate home", StateHistory, ActionNavigateHome, true, StateHome},
		{"form sign-in requested", StateForm, ActionSignInRequested, false, StateAuth},
		{"history logout completed", StateHistory, ActionLogoutCompleted, false, StateHome},
		{"results logout completed", StateResults, ActionLogoutCompleted, false, StateHome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Next(tt.from, tt.action, tt.signedIn)
			if !ok {
				t.Fatalf("Next(%v, %v, %v) not applied", tt.from, tt.action, tt.signedIn)
			}
			if got != tt.want {
				t.Errorf("Next(%v, %v, %v) = %v, want %v", tt.from, tt.action, tt.signedIn, got, tt.want)
			}
		})
	}
}

func TestNext_GuardedNoOps(t *testing.T) {
	// navigate-history without an identity stays put.
	got, ok := Next(StateHome, ActionNavigateHistory, false)
	if ok || got != StateHome {
		t.Errorf("Next(home, navigate-history, signed out) = %v, %v; want home no-op", got, ok)
	}
}

// Every (state, action) pair not listed in the transition table must
// leave the machine in place.
func TestNext_UnlistedPairsAreNoOps(t *testing.T) {
	states := []ViewState{StateHome, StateAuth, StateForm, StateResults, StateHistory}
	actions := []Action{
		ActionStartAssessment, ActionNavigateHome, ActionNavigateHistory,
		ActionLoginSucceeded, ActionSubmitSucceeded, ActionRetake,
		ActionSignInRequested, ActionLogoutCompleted,
	}

	listed := func(s ViewState, a Action, signedIn bool) bool {
		switch a {
		case ActionNavigateHome, ActionSignInRequested, ActionLogoutCompleted:
			return true
		case ActionStartAssessment:
			return s == StateHome
		case ActionNavigateHistory:
			return s == StateHome && signedIn
		case ActionLoginSucceeded:
			return s == StateAuth
		case ActionSubmitSucceeded:
			return s == StateForm
		case ActionRetake:
			return s == StateResults
		}
		return false
	}

	for _, signedIn := range []bool{true, false} {
		for _, s := range states {
			for _, a := range actions {
				got, ok := Next(s, a, signedIn)
				if listed(s, a, signedIn) {
					if !ok {
						t.Errorf("Next(%v, %v, %v): expected listed transition", s, a, signedIn)
					}
					continue
				}
				if ok {
					t.Errorf("Next(%v, %v, %v): unlisted pair applied a transition", s, a, signedIn)
				}
				if got != s {
					t.Errorf("Next(%v, %v, %v) moved to %v; no-op must stay at %v", s, a, signedIn, got, s)
				}
			}
		}
	}
}

func TestStateAndActionStrings(t *testing.T) {
	if StateHistory.String() != "history" {
		t.Errorf("StateHistory.String() = %q", StateHistory.String())
	}
	if ActionStartAssessment.String() != "start-assessment" {
		t.Errorf("ActionStartAssessment.String() = %q", ActionStartAssessment.String())
	}
}
