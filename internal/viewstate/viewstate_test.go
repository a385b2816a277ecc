package viewstate

import "testing"

func TestNewViewState(t *testing.T) {
	v := New()

	if v.Authenticated() {
		t.Error("Expected new state to be unauthenticated")
	}
	if v.Screen() != ScreenWelcome {
		t.Errorf("Expected welcome screen, got %s", v.Screen())
	}
	if _, ok := v.AnalysisResult(); ok {
		t.Error("Expected no analysis result on a new state")
	}
}

func TestZeroValueIsInitialState(t *testing.T) {
	var v ViewState
	if v.Screen() != ScreenWelcome {
		t.Errorf("Expected zero value to show welcome screen, got %s", v.Screen())
	}
	if v.DisplayResult() != NoDataText {
		t.Errorf("Expected %q, got %q", NoDataText, v.DisplayResult())
	}
}

func TestLoginLogout(t *testing.T) {
	v := New()

	v.Login()
	if !v.Authenticated() || v.Screen() != ScreenWorkspace {
		t.Fatalf("Expected workspace after login, got %s", v.Screen())
	}

	// idempotent
	v.Login()
	if v.Screen() != ScreenWorkspace {
		t.Errorf("Expected workspace after second login, got %s", v.Screen())
	}

	v.Logout()
	if v.Authenticated() || v.Screen() != ScreenWelcome {
		t.Errorf("Expected welcome after logout, got %s", v.Screen())
	}
}

func TestLogoutKeepsAnalysisResult(t *testing.T) {
	v := New()
	v.Login()
	v.SetAnalysisResult("42")
	v.Logout()

	result, ok := v.AnalysisResult()
	if !ok || result != "42" {
		t.Fatalf("Expected result 42 to survive logout, got %q (set=%v)", result, ok)
	}

	v.Login()
	if got := v.DisplayResult(); got != "42" {
		t.Errorf("Expected prior result after re-login, got %q", got)
	}
}

func TestDisplayResult(t *testing.T) {
	tests := []struct {
		name  string
		setup func(v *ViewState)
		want  string
	}{
		{"unset", func(v *ViewState) {}, NoDataText},
		{"set", func(v *ViewState) { v.SetAnalysisResult("42") }, "42"},
		{"empty string", func(v *ViewState) { v.SetAnalysisResult("") }, NoDataText},
		{"cleared", func(v *ViewState) {
			v.SetAnalysisResult("42")
			v.ClearAnalysisResult()
		}, NoDataText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			tt.setup(v)
			if got := v.DisplayResult(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestApply(t *testing.T) {
	v := New()

	tr := v.Apply(ActionLogin)
	if tr.From != ScreenWelcome || tr.To != ScreenWorkspace || !tr.Changed() {
		t.Errorf("Unexpected login transition: %+v", tr)
	}

	tr = v.Apply(ActionLogin)
	if tr.Changed() {
		t.Errorf("Expected repeated login to be a no-op, got %+v", tr)
	}

	tr = v.Apply(ActionLogout)
	if tr.From != ScreenWorkspace || tr.To != ScreenWelcome {
		t.Errorf("Unexpected logout transition: %+v", tr)
	}

	tr = v.Apply(Action(99))
	if tr.Changed() || v.Authenticated() {
		t.Errorf("Expected unknown action to leave state unchanged, got %+v", tr)
	}
}

func TestNames(t *testing.T) {
	if ScreenWelcome.String() != "welcome" || ScreenWorkspace.String() != "workspace" {
		t.Error("Unexpected screen names")
	}
	if ActionLogin.String() != "login" || ActionLogout.String() != "logout" {
		t.Error("Unexpected action names")
	}
	if Screen(7).String() != "unknown" || Action(7).String() != "unknown" {
		t.Error("Expected unknown for out-of-range values")
	}
}
