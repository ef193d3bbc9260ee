package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lightbox/internal/carousel"
	"lightbox/internal/config"
)

func testDeck(drawers bool) *config.Deck {
	d := &config.Deck{
		Title:   "demo",
		Drawers: drawers,
		Slides: []config.Slide{
			{Title: "Alpha", Body: "first body", Drawer: "alpha notes"},
			{Title: "Bravo", Body: "second body"},
			{Title: "Charlie", Body: "third body"},
		},
	}
	if err := d.Validate(); err != nil {
		panic(err)
	}
	return d
}

func newTestModel(t *testing.T, drawers bool) model {
	t.Helper()
	m, err := newModel(testDeck(drawers), Options{NoColor: true})
	if err != nil {
		t.Fatalf("newModel: %v", err)
	}
	return m
}

func update(m model, msg tea.Msg) model {
	nm, _ := m.Update(msg)
	return nm.(model)
}

// settle fires every pending controller timer, including ones scheduled while firing.
func settle(m model) model {
	for {
		ids := m.sched.Pending()
		if len(ids) == 0 {
			return m
		}
		m = update(m, timerMsg{id: ids[0]})
	}
}

func TestNewModelRejectsEmptyDeck(t *testing.T) {
	_, err := newModel(&config.Deck{}, Options{NoColor: true})
	var cfgErr *carousel.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
}

func TestKeyNavigationWraps(t *testing.T) {
	m := newTestModel(t, false)

	nm, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = nm.(model)
	if cmd == nil {
		t.Fatalf("expected timer and frame commands")
	}
	if m.ctrl.Index() != 2 || !m.ctrl.Transitioning() {
		t.Fatalf("expected animating towards index 2, got %d", m.ctrl.Index())
	}

	// ignored while animating
	m = update(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.ctrl.Index() != 2 {
		t.Fatalf("expected re-entrant request dropped")
	}
	m = settle(m)

	m = settle(update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}}))
	m = settle(update(m, tea.KeyMsg{Type: tea.KeyRight}))
	if m.ctrl.Index() != 1 || m.ctrl.Transitioning() {
		t.Fatalf("expected wrap to index 1 and idle, got %d (%s)", m.ctrl.Index(), m.ctrl.Phase())
	}

	m = settle(update(m, tea.KeyMsg{Type: tea.KeyLeft}))
	if m.ctrl.Index() != 3 {
		t.Fatalf("expected wrap back to index 3, got %d", m.ctrl.Index())
	}
}

func TestMouseWheelScrolls(t *testing.T) {
	m := newTestModel(t, false)
	m = settle(update(m, tea.MouseMsg{Button: tea.MouseButtonWheelDown}))
	if m.ctrl.Current() != 2 {
		t.Fatalf("expected wheel down to advance, got %d", m.ctrl.Current())
	}
	m = settle(update(m, tea.MouseMsg{Button: tea.MouseButtonWheelUp}))
	m = settle(update(m, tea.MouseMsg{Button: tea.MouseButtonWheelUp}))
	if m.ctrl.Current() != 3 {
		t.Fatalf("expected wheel up to wrap to last slide, got %d", m.ctrl.Current())
	}
	m = update(m, tea.MouseMsg{Button: tea.MouseButtonLeft})
	if m.ctrl.Transitioning() {
		t.Fatalf("expected clicks to be ignored")
	}
}

func TestDrawerLocksHorizontal(t *testing.T) {
	m := newTestModel(t, true)

	m = update(m, tea.KeyMsg{Type: tea.KeyDown})
	if !m.ctrl.Revealed(1) || !m.surface.overlayHidden {
		t.Fatalf("expected drawer open and overlay hidden")
	}
	m = settle(m)
	m = settle(update(m, tea.KeyMsg{Type: tea.KeyRight}))
	if m.ctrl.Index() != 1 {
		t.Fatalf("expected horizontal move rejected while drawer open")
	}
	if !strings.Contains(m.View(), "alpha notes") {
		t.Fatalf("expected drawer content in view:\n%s", m.View())
	}

	m = settle(update(m, tea.KeyMsg{Type: tea.KeyUp}))
	if m.ctrl.Revealed(1) || m.surface.overlayHidden {
		t.Fatalf("expected drawer closed and overlay shown")
	}
	m = settle(update(m, tea.KeyMsg{Type: tea.KeyRight}))
	if m.ctrl.Index() != 2 {
		t.Fatalf("expected move after drawer closed, got %d", m.ctrl.Index())
	}
}

func TestDrawerKeysDisabledWithoutDrawers(t *testing.T) {
	m := newTestModel(t, false)
	m = update(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.ctrl.Revealed(1) || m.ctrl.Transitioning() {
		t.Fatalf("expected reveal ignored without drawers")
	}
}

func TestCopyCurrentSlide(t *testing.T) {
	m := newTestModel(t, false)
	var copied string
	m.copyText = func(s string) error { copied = s; return nil }

	m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	if !strings.Contains(copied, "Alpha") || !strings.Contains(copied, "first body") {
		t.Fatalf("unexpected clipboard text: %q", copied)
	}
	if m.ui.Notice != "Copied slide 1" {
		t.Fatalf("unexpected notice: %q", m.ui.Notice)
	}

	m.copyText = func(string) error { return errors.New("no clipboard") }
	m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	if !strings.HasPrefix(m.ui.Notice, "Copy failed") {
		t.Fatalf("expected failure notice, got %q", m.ui.Notice)
	}
}

func TestFrameLoopStopsWhenSettled(t *testing.T) {
	m := newTestModel(t, false)
	m = update(m, tea.KeyMsg{Type: tea.KeyRight})
	if !m.framing {
		t.Fatalf("expected frame loop to start")
	}
	nm, cmd := m.Update(frameMsg(time.Now().Add(time.Hour)))
	m = nm.(model)
	if m.framing || cmd != nil {
		t.Fatalf("expected frame loop to stop once offsets reach their targets")
	}
}

func TestViewShowsCaptionChipsAndHelp(t *testing.T) {
	m := newTestModel(t, true)
	m = update(m, tea.WindowSizeMsg{Width: 60, Height: 20})
	out := m.View()
	for _, w := range []string{"Alpha", "first body", "[1/3]", "○", "demo", "next"} {
		if !strings.Contains(out, w) {
			t.Fatalf("expected %q in view:\n%s", w, out)
		}
	}

	m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if !m.ui.ShowHelp || !strings.Contains(m.View(), "close drawer") {
		t.Fatalf("expected full help after '?'")
	}
}

func TestViewTooSmall(t *testing.T) {
	m := newTestModel(t, false)
	m = update(m, tea.WindowSizeMsg{Width: 10, Height: 4})
	if !strings.Contains(m.View(), "Terminal too small") {
		t.Fatalf("expected too-small message")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, false)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
