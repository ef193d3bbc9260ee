package tagchips

import (
    "fmt"
    "os"
    "strings"

    "github.com/charmbracelet/lipgloss"
    "lightbox/internal/tui/state"
)

// View renders status tags in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled or not desired.
func View(tags []state.Tag, noColor bool) string {
    if len(tags) == 0 {
        return ""
    }
    // Honor NO_COLOR env var in addition to explicit param
    if !noColor && os.Getenv("NO_COLOR") != "" {
        noColor = true
    }

    parts := make([]string, 0, len(tags))
    for _, t := range tags {
        parts = append(parts, renderChip(t, noColor))
    }
    return strings.Join(parts, " ")
}

func renderChip(t state.Tag, noColor bool) string {
    label := chipLabel(t)
    if noColor {
        return fmt.Sprintf("[%s]", label)
    }
    style := chipStyle(t)
    return style.Render(" " + label + " ")
}

func chipLabel(t state.Tag) string {
    switch t.Kind {
    case state.POSITION:
        return fmt.Sprintf("%d/%d", t.Value, t.Total)
    case state.CLONE:
        return "Clone"
    case state.ANIMATING:
        return "Moving"
    case state.SNAPPING:
        return "Snap"
    case state.REVEALING:
        return "Drawer…"
    case state.DRAWER:
        return "Drawer"
    default:
        return "Tag"
    }
}

func chipStyle(t state.Tag) lipgloss.Style {
    base := lipgloss.NewStyle().Padding(0, 1).Bold(true)
    switch t.Kind {
    case state.POSITION:
        return base.Background(lipgloss.Color("#3D6DFF")).Foreground(lipgloss.Color("#FFFFFF"))
    case state.CLONE:
        return base.Background(lipgloss.Color("#5A5A5A")).Foreground(lipgloss.Color("#FFFFFF"))
    case state.ANIMATING:
        return base.Background(lipgloss.Color("#2AA876")).Foreground(lipgloss.Color("#FFFFFF"))
    case state.SNAPPING:
        return base.Background(lipgloss.Color("#F0AD4E")).Foreground(lipgloss.Color("#111111"))
    case state.REVEALING, state.DRAWER:
        return base.Background(lipgloss.Color("#6C757D")).Foreground(lipgloss.Color("#FFFFFF"))
    default:
        return base
    }
}
