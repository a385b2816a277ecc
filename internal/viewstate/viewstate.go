package viewstate

// NoDataText is shown in place of an absent analysis result
const NoDataText = "No data yet"

// Screen identifies which of the two mutually exclusive views is shown
type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenWorkspace
)

// String returns the screen name used in logs and region paths
func (s Screen) String() string {
	switch s {
	case ScreenWelcome:
		return "welcome"
	case ScreenWorkspace:
		return "workspace"
	default:
		return "unknown"
	}
}

// Action is a user-triggered transition
type Action int

const (
	ActionLogin Action = iota
	ActionLogout
)

// String returns the action name
func (a Action) String() string {
	switch a {
	case ActionLogin:
		return "login"
	case ActionLogout:
		return "logout"
	default:
		return "unknown"
	}
}

// Transition describes the effect of applying an action
type Transition struct {
	Action Action
	From   Screen
	To     Screen
}

// Changed reports whether the transition moved to a different screen
func (t Transition) Changed() bool {
	return t.From != t.To
}

// ViewState is the in-memory session record driving which screen is shown.
// The zero value is the initial state: unauthenticated, no analysis result.
type ViewState struct {
	authenticated bool
	result        string
	hasResult     bool
}

// New creates a view state with defaults
func New() *ViewState {
	return &ViewState{}
}

// Login marks the session as authenticated
func (v *ViewState) Login() {
	v.authenticated = true
}

// Logout marks the session as unauthenticated.
// The analysis result is left as is.
func (v *ViewState) Logout() {
	v.authenticated = false
}

// Apply performs the named action and reports the resulting transition.
// Unknown actions leave the state unchanged.
func (v *ViewState) Apply(action Action) Transition {
	from := v.Screen()
	switch action {
	case ActionLogin:
		v.Login()
	case ActionLogout:
		v.Logout()
	}
	return Transition{Action: action, From: from, To: v.Screen()}
}

// Authenticated reports whether the session is authenticated
func (v *ViewState) Authenticated() bool {
	return v.authenticated
}

// Screen returns the screen selected by the authentication flag
func (v *ViewState) Screen() Screen {
	if v.authenticated {
		return ScreenWorkspace
	}
	return ScreenWelcome
}

// SetAnalysisResult stores the analysis result to display
func (v *ViewState) SetAnalysisResult(result string) {
	v.result = result
	v.hasResult = true
}

// ClearAnalysisResult removes the stored analysis result
func (v *ViewState) ClearAnalysisResult() {
	v.result = ""
	v.hasResult = false
}

// AnalysisResult returns the stored result and whether one is set
func (v *ViewState) AnalysisResult() (string, bool) {
	return v.result, v.hasResult
}

// DisplayResult returns the text shown for the analysis result.
// An unset or empty result falls back to NoDataText.
func (v *ViewState) DisplayResult() string {
	if !v.hasResult || v.result == "" {
		return NoDataText
	}
	return v.result
}
