package formatter

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/yildizm/DataPlatform/internal/viewstate"
)

func TestCapture(t *testing.T) {
	state := viewstate.New()
	snap := Capture(state, "welcome")
	if snap.Screen != "welcome" || snap.Authenticated || snap.Result != nil || snap.Display != "" {
		t.Errorf("Unexpected welcome snapshot: %+v", snap)
	}

	state.Login()
	snap = Capture(state, "workspace")
	if snap.Display != viewstate.NoDataText {
		t.Errorf("Expected fallback display, got %q", snap.Display)
	}

	state.SetAnalysisResult("42")
	snap = Capture(state, "workspace")
	if snap.Result == nil || *snap.Result != "42" || snap.Display != "42" {
		t.Errorf("Unexpected result snapshot: %+v", snap)
	}
}

func TestNew(t *testing.T) {
	for _, format := range []string{"", "text", "json", "markdown", "md"} {
		if _, err := New(format); err != nil {
			t.Errorf("New(%q) failed: %v", format, err)
		}
	}
	if _, err := New("csv"); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestJSONFormat(t *testing.T) {
	state := viewstate.New()
	state.Login()

	data, err := NewJSON().Format(Capture(state, "ignored"))
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if decoded["screen"] != "workspace" {
		t.Errorf("Expected screen workspace, got %v", decoded["screen"])
	}
	if decoded["analysis_result"] != nil {
		t.Errorf("Expected null analysis_result, got %v", decoded["analysis_result"])
	}
	if decoded["display_result"] != "No data yet" {
		t.Errorf("Expected display fallback, got %v", decoded["display_result"])
	}
	if _, ok := decoded["Rendered"]; ok {
		t.Error("Rendered screen must not be part of the JSON output")
	}
}

func TestMarkdownFormat(t *testing.T) {
	state := viewstate.New()
	state.Login()
	state.SetAnalysisResult("a|b")

	data, err := NewMarkdown().Format(Capture(state, "\x1b[1mDashboard Workspace\x1b[0m"))
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	out := string(data)
	for _, want := range []string{"| Screen | workspace |", `| Analysis Result | a\|b |`, "```text\nDashboard Workspace\n```"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in:\n%s", want, out)
		}
	}
}

func TestMarkdownMultilineResult(t *testing.T) {
	state := viewstate.New()
	state.Login()
	state.SetAnalysisResult("rows: 10\r\nerrors: 0\nstatus: ok")

	data, err := NewMarkdown().Format(Capture(state, ""))
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	want := "| Analysis Result | rows: 10<br>errors: 0<br>status: ok |\n"
	if !strings.Contains(string(data), want) {
		t.Errorf("Expected result on a single table row %q, got:\n%s", want, data)
	}
}

func TestTextFormat(t *testing.T) {
	data, err := NewText().Format(&ScreenSnapshot{Rendered: "screen"})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "screen\n" {
		t.Errorf("Expected rendered screen, got %q", data)
	}
}
