package tui

import (
	"sort"
	"time"

	"lightbox/internal/carousel"
)

// slideState tracks one mounted slide. Offsets are percent of the viewport width;
// shown moves linearly from "from" to "target" over the transition duration.
type slideState struct {
	slide    carousel.Slide
	from     float64
	target   float64
	shown    float64
	start    time.Time
	revealed bool
}

// termSurface is the terminal implementation of carousel.Surface. It only
// records geometry; the model renders it.
type termSurface struct {
	count         int
	states        []slideState
	transitions   bool
	duration      time.Duration
	overlayHidden bool
	flushes       int
	now           func() time.Time
}

func newTermSurface(count int, duration time.Duration, now func() time.Time) *termSurface {
	if now == nil {
		now = time.Now
	}
	return &termSurface{count: count, duration: duration, now: now, transitions: true}
}

func (s *termSurface) Enumerate() []carousel.Slide {
	out := make([]carousel.Slide, s.count)
	for i := range out {
		out[i] = carousel.Slide{Ordinal: i, Source: i}
	}
	return out
}

func (s *termSurface) Mount(seq []carousel.Slide) {
	s.states = make([]slideState, len(seq))
	for i, sl := range seq {
		s.states[i].slide = sl
	}
}

func (s *termSurface) SetTransitions(enabled bool) { s.transitions = enabled }

func (s *termSurface) SetOffset(sl carousel.Slide, percent int) {
	st := &s.states[sl.Ordinal]
	st.target = float64(percent)
	if !s.transitions || s.duration <= 0 {
		st.from, st.shown = st.target, st.target
		return
	}
	st.from = st.shown
	st.start = s.now()
}

func (s *termSurface) SetRevealed(sl carousel.Slide, revealed bool) {
	s.states[sl.Ordinal].revealed = revealed
}

func (s *termSurface) SetOverlayHidden(hidden bool) { s.overlayHidden = hidden }

// Flush commits offsets set while transitions were off so that a later
// SetTransitions(true) does not animate from a stale position.
func (s *termSurface) Flush() {
	if !s.transitions {
		for i := range s.states {
			st := &s.states[i]
			st.from, st.shown = st.target, st.target
		}
	}
	s.flushes++
}

// Step advances every in-flight offset to time now and reports whether any
// slide is still moving.
func (s *termSurface) Step(now time.Time) bool {
	moving := false
	for i := range s.states {
		st := &s.states[i]
		if st.shown == st.target {
			continue
		}
		elapsed := now.Sub(st.start)
		if elapsed >= s.duration {
			st.shown, st.from = st.target, st.target
			continue
		}
		if elapsed < 0 {
			elapsed = 0
		}
		p := float64(elapsed) / float64(s.duration)
		st.shown = st.from + (st.target-st.from)*p
		moving = true
	}
	return moving
}

// Animating reports whether any slide has not reached its target.
func (s *termSurface) Animating() bool {
	for _, st := range s.states {
		if st.shown != st.target {
			return true
		}
	}
	return false
}

// visible returns the slides overlapping the viewport, left to right.
func (s *termSurface) visible() []slideState {
	var out []slideState
	for _, st := range s.states {
		if st.shown > -100 && st.shown < 100 {
			out = append(out, st)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].shown < out[j].shown })
	return out
}
