package monitor

import (
	"sync"
	"time"
)

// SlotCount is the number of positions in the status bar.
const SlotCount = 10

// Transition describes how a completed check changed the up/down status.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionDown
	TransitionUp
)

func (t Transition) String() string {
	switch t {
	case TransitionDown:
		return "down"
	case TransitionUp:
		return "up"
	default:
		return "none"
	}
}

// State is the record shared by the poll and render loops. Every field is
// read and written with mu held.
type State struct {
	mu        sync.Mutex
	up        bool
	lastCheck time.Time
	elapsed   time.Duration
	slots     [SlotCount]Slot
}

// Snapshot is a consistent copy of the scalar fields of State.
type Snapshot struct {
	Up        bool
	LastCheck time.Time
	Elapsed   time.Duration
}

// NewState creates a State seeded with the result of the startup check.
func NewState(up bool, checkedAt time.Time) *State {
	return &State{up: up, lastCheck: checkedAt}
}

// Snapshot returns the current status.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{Up: s.up, LastCheck: s.lastCheck, Elapsed: s.elapsed}
}

// frame adds period to the elapsed time and calls fn with the updated
// fields, all under one lock acquisition. fn may step the slots but must
// not retain the pointer.
func (s *State) frame(period time.Duration, fn func(up bool, lastCheck time.Time, elapsed time.Duration, slots *[SlotCount]Slot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.elapsed += period
	fn(s.up, s.lastCheck, s.elapsed, &s.slots)
}

// Due reports whether at least cadence has elapsed since the last check.
func (s *State) Due(cadence time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed >= cadence
}

// Complete records a finished check: it stamps the check time, stores the
// result, zeroes the elapsed time and restarts every slot. The returned
// Transition is TransitionDown only on an up->down edge.
func (s *State) Complete(up bool, at time.Time) Transition {
	s.mu.Lock()
	defer s.mu.Unlock()

	tr := TransitionNone
	switch {
	case s.up && !up:
		tr = TransitionDown
	case !s.up && up:
		tr = TransitionUp
	}

	s.up = up
	s.lastCheck = at
	s.elapsed = 0
	for i := range s.slots {
		s.slots[i].Reset()
	}
	return tr
}

// ActiveSlots returns how many bar slots are lit after elapsed time, one per
// full interval, capped at SlotCount. A non-positive interval lights nothing.
func ActiveSlots(elapsed, interval time.Duration) int {
	if elapsed <= 0 || interval <= 0 {
		return 0
	}
	n := elapsed / interval
	if n > SlotCount {
		return SlotCount
	}
	return int(n)
}
