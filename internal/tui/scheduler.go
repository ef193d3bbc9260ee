package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type timerMsg struct{ id int }

// teaScheduler implements carousel.Scheduler on top of tea.Tick. Callbacks are
// kept here and run from Update when their timerMsg arrives, so the controller
// only ever runs on the program's event loop.
type teaScheduler struct {
	next    int
	pending map[int]func()
	queued  []tea.Cmd
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{pending: map[int]func(){}}
}

func (s *teaScheduler) AfterFunc(d time.Duration, fn func()) {
	id := s.next
	s.next++
	s.pending[id] = fn
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg { return timerMsg{id: id} }))
}

// Cmd drains the ticks scheduled since the last call.
func (s *teaScheduler) Cmd() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

// Fire runs the callback for id once. Unknown ids are ignored.
func (s *teaScheduler) Fire(id int) bool {
	fn, ok := s.pending[id]
	if !ok {
		return false
	}
	delete(s.pending, id)
	fn()
	return true
}

// Pending returns the ids not yet fired, lowest first.
func (s *teaScheduler) Pending() []int {
	ids := make([]int, 0, len(s.pending))
	for id := 0; id < s.next; id++ {
		if _, ok := s.pending[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
