package monitor

import (
	"sync"
	"time"

	"github.com/yildizm/DataPlatform/internal/viewstate"
)

// Tracker records session transitions and time spent on each screen.
// It is safe for concurrent use.
type Tracker struct {
	mu        sync.RWMutex
	now       func() time.Time
	startedAt time.Time
	current   viewstate.Screen
	enteredAt time.Time
	dwell     map[viewstate.Screen]time.Duration
	actions   map[viewstate.Action]int64
	changes   int64
	last      *viewstate.Transition
	lastAt    time.Time
}

// NewTracker creates a tracker starting on the given screen
func NewTracker(initial viewstate.Screen) *Tracker {
	return newTrackerWithClock(initial, time.Now)
}

func newTrackerWithClock(initial viewstate.Screen, now func() time.Time) *Tracker {
	start := now()
	return &Tracker{
		now:       now,
		startedAt: start,
		current:   initial,
		enteredAt: start,
		dwell:     make(map[viewstate.Screen]time.Duration),
		actions:   make(map[viewstate.Action]int64),
	}
}

// Record accounts for an applied transition
func (t *Tracker) Record(tr viewstate.Transition) {
	t.mu.Lock()
	defer t.mu.Unlock()

	at := t.now()
	t.actions[tr.Action]++
	t.last = &tr
	t.lastAt = at

	if !tr.Changed() {
		return
	}
	t.dwell[t.current] += at.Sub(t.enteredAt)
	t.current = tr.To
	t.enteredAt = at
	t.changes++
}

// Snapshot returns a point-in-time copy of the session metrics
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	at := t.now()
	snap := Snapshot{
		StartedAt:     t.startedAt,
		Uptime:        at.Sub(t.startedAt),
		CurrentScreen: t.current.String(),
		ScreenChanges: t.changes,
		Actions:       make(map[string]int64, len(t.actions)),
		Dwell:         make(map[string]time.Duration, len(t.dwell)+1),
	}
	for action, count := range t.actions {
		snap.Actions[action.String()] = count
	}
	for screen, d := range t.dwell {
		snap.Dwell[screen.String()] = d
	}
	snap.Dwell[t.current.String()] += at.Sub(t.enteredAt)

	if t.last != nil {
		snap.LastAction = t.last.Action.String()
		snap.LastActionAt = t.lastAt
	}
	return snap
}
