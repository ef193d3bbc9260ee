package helpoverlay

import (
    "strings"
    "testing"

    "github.com/charmbracelet/bubbles/key"

    "lightbox/internal/tui/state"
)

type fakeKeys struct{ next, drawer key.Binding }

func (k fakeKeys) ShortHelp() []key.Binding  { return []key.Binding{k.next} }
func (k fakeKeys) FullHelp() [][]key.Binding { return [][]key.Binding{{k.next}, {k.drawer}} }

func keys() fakeKeys {
    return fakeKeys{
        next:   key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next")),
        drawer: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "open drawer")),
    }
}

func TestShortHelpByDefault(t *testing.T) {
    out := NewHelpOverlay().View(state.UIState{Width: 80}, keys())
    if !strings.Contains(out, "next") || strings.Contains(out, "open drawer") {
        t.Fatalf("expected short help only: %q", out)
    }
}

func TestFullHelpInBox(t *testing.T) {
    out := NewHelpOverlay().View(state.UIState{Width: 80, ShowHelp: true}, keys())
    if !strings.Contains(out, "open drawer") || !strings.Contains(out, "╭") {
        t.Fatalf("expected boxed full help: %q", out)
    }
}
