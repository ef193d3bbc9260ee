package carousel

import (
	"sort"
	"time"
)

// ManualScheduler is a deterministic Scheduler driven by Advance. It is meant for
// tests and headless hosts.
type ManualScheduler struct {
	now     time.Duration
	seq     int
	pending []timer
}

type timer struct {
	due time.Duration
	seq int
	fn  func()
}

// NewManualScheduler returns a scheduler at time zero.
func NewManualScheduler() *ManualScheduler { return &ManualScheduler{} }

func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	s.pending = append(s.pending, timer{due: s.now + d, seq: s.seq, fn: fn})
	s.seq++
}

// Advance moves the clock forward by d and fires every callback that falls due,
// in due order. Callbacks scheduled while firing run too if they fall due.
func (s *ManualScheduler) Advance(d time.Duration) {
	end := s.now + d
	for {
		i := s.nextDue(end)
		if i < 0 {
			break
		}
		t := s.pending[i]
		s.pending = append(s.pending[:i], s.pending[i+1:]...)
		s.now = t.due
		t.fn()
	}
	s.now = end
}

// Flush fires every pending callback, however far in the future.
func (s *ManualScheduler) Flush() {
	for len(s.pending) > 0 {
		sort.SliceStable(s.pending, func(a, b int) bool { return s.pending[a].due < s.pending[b].due })
		s.Advance(s.pending[0].due - s.now)
	}
}

// Pending returns the number of callbacks not yet fired.
func (s *ManualScheduler) Pending() int { return len(s.pending) }

// Now returns the elapsed virtual time.
func (s *ManualScheduler) Now() time.Duration { return s.now }

func (s *ManualScheduler) nextDue(end time.Duration) int {
	best := -1
	for i, t := range s.pending {
		if t.due > end {
			continue
		}
		if best < 0 || t.due < s.pending[best].due || (t.due == s.pending[best].due && t.seq < s.pending[best].seq) {
			best = i
		}
	}
	return best
}
