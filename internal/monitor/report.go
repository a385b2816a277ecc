package monitor

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/yildizm/go-termfmt"
)

// Snapshot is a point-in-time view of session metrics
type Snapshot struct {
	StartedAt     time.Time                `json:"started_at"`
	Uptime        time.Duration            `json:"uptime_ns"`
	CurrentScreen string                   `json:"current_screen"`
	ScreenChanges int64                    `json:"screen_changes"`
	Actions       map[string]int64         `json:"actions"`
	Dwell         map[string]time.Duration `json:"dwell_ns"`
	LastAction    string                   `json:"last_action,omitempty"`
	LastActionAt  time.Time                `json:"last_action_at,omitempty"`
}

// WriteReport writes a tree summary of the snapshot
func (s Snapshot) WriteReport(w io.Writer, opts *termfmt.TerminalOptions) error {
	if opts == nil {
		opts = termfmt.DefaultOptions()
	}

	items := []termfmt.TreeItem{
		{Label: "Session", Value: roundDuration(s.Uptime).String()},
		{Label: "Current Screen", Value: s.CurrentScreen},
		{Label: "Screen Changes", Value: fmt.Sprintf("%d", s.ScreenChanges)},
	}

	actions := termfmt.TreeItem{Label: "Actions", Value: fmt.Sprintf("%d", s.totalActions())}
	names := sortedKeys(s.Actions)
	for i, name := range names {
		actions.Children = append(actions.Children, termfmt.TreeItem{
			Label: name,
			Value: fmt.Sprintf("%d", s.Actions[name]),
			Last:  i == len(names)-1,
		})
	}
	items = append(items, actions)

	dwell := termfmt.TreeItem{Label: "Time on Screen", Last: true}
	screens := sortedKeys(s.Dwell)
	for i, name := range screens {
		dwell.Children = append(dwell.Children, termfmt.TreeItem{
			Label: name,
			Value: roundDuration(s.Dwell[name]).String(),
			Last:  i == len(screens)-1,
		})
	}
	items = append(items, dwell)

	symbol := termfmt.GetEmoji("summary", opts)
	if _, err := fmt.Fprintf(w, "%s Session Summary\n%s\n", symbol, termfmt.TreeViewWithOptions(items, opts)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// WriteJSON writes the snapshot as indented JSON
func (s Snapshot) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

func (s Snapshot) totalActions() int64 {
	var total int64
	for _, n := range s.Actions {
		total += n
	}
	return total
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func roundDuration(d time.Duration) time.Duration {
	if d < time.Second {
		return d.Round(time.Millisecond)
	}
	return d.Round(100 * time.Millisecond)
}
