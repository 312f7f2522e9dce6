package router

// ViewState identifies which screen is active. Exactly one state is
// active at a time; the machine starts at StateHome and has no terminal
// state.
type ViewState int

const (
	StateHome ViewState = iota
	StateAuth
	StateForm
	StateResults
	StateHistory
)

func (s ViewState) String() string {
	switch s {
	case StateHome:
		return "home"
	case StateAuth:
		return "auth"
	case StateForm:
		return "form"
	case StateResults:
		return "results"
	case StateHistory:
		return "history"
	default:
		return "unknown"
	}
}

// Action is a user or system event that may cause a view transition.
type Action int

const (
	ActionStartAssessment Action = iota
	ActionNavigateHome
	ActionNavigateHistory
	ActionLoginSucceeded
	ActionSubmitSucceeded
	ActionRetake
	ActionSignInRequested
	ActionLogoutCompleted
)

func (a Action) String() string {
	switch a {
	case ActionStartAssessment:
		return "start-assessment"
	case ActionNavigateHome:
		return "navigate-home"
	case ActionNavigateHistory:
		return "navigate-history"
	case ActionLoginSucceeded:
		return "login-succeeded"
	case ActionSubmitSucceeded:
		return "submit-succeeded"
	case ActionRetake:
		return "retake"
	case ActionSignInRequested:
		return "sign-in-requested"
	case ActionLogoutCompleted:
		return "logout-completed"
	default:
		return "unknown"
	}
}

// NavigateMsg asks the app model to apply an action to the view machine.
// Screens emit it as a tea.Msg; the app model resolves it through Next.
type NavigateMsg struct {
	Action Action
}

// Next resolves one transition of the view machine. It returns the next
// state and true when the (state, action) pair is listed, or the current
// state and false when the pair is a no-op. signedIn is the identity
// guard evaluated at dispatch time.
//
//	Home    start-assessment   → Form (signed in) / Auth (signed out)
//	any     navigate-home      → Home
//	Home    navigate-history   → History, only when signed in
//	Auth    login-succeeded    → Home
//	Form    submit-succeeded   → Results
//	Results retake             → Form
//	any     sign-in-requested  → Auth
//	any     logout-completed   → Home
func Next(state ViewState, action Action, signedIn bool) (ViewState, bool) {
	switch action {
	case ActionNavigateHome, ActionLogoutCompleted:
		return StateHome, true
	case ActionSignInRequested:
		return StateAuth, true
	case ActionStartAssessment:
		if state != StateHome {
			return state, false
		}
		if signedIn {
			return StateForm, true
		}
		return StateAuth, true
	case ActionNavigateHistory:
		if state != StateHome || !signedIn {
			return state, false
		}
		return StateHistory, true
	case ActionLoginSucceeded:
		if state != StateAuth {
			return state, false
		}
		return StateHome, true
	case ActionSubmitSucceeded:
		if state != StateForm {
			return state, false
		}
		return StateResults, true
	case ActionRetake:
		if state != StateResults {
			return state, false
		}
		return StateForm, true
	}
	return state, false
}
