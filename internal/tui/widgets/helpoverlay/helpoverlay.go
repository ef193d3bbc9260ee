package helpoverlay

import (
    "github.com/charmbracelet/bubbles/help"
    "github.com/charmbracelet/lipgloss"

    "lightbox/internal/tui/state"
)

type HelpOverlay struct {
    help help.Model
}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{help: help.New()} }

// View returns the key help: a single line normally, grouped columns inside a
// border when ShowHelp is set.
func (h HelpOverlay) View(s state.UIState, keys help.KeyMap) string {
    h.help.Width = s.Width
    h.help.ShowAll = s.ShowHelp
    if !s.ShowHelp {
        return h.help.View(keys)
    }
    box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
    return box.Render(h.help.View(keys))
}
