package util

import (
    "os"

    "github.com/charmbracelet/lipgloss"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
    if explicit {
        return true
    }
    return os.Getenv("NO_COLOR") != ""
}

// Palette defines a small set of colors used across widgets.
type Palette struct {
    Primary   lipgloss.Color
    Success   lipgloss.Color
    Danger    lipgloss.Color
    Warning   lipgloss.Color
    Muted     lipgloss.Color
    MutedDark lipgloss.Color
}

// DefaultPalette returns the default palette.
func DefaultPalette() Palette {
    return Palette{
        Primary:   lipgloss.Color("#3D6DFF"),
        Success:   lipgloss.Color("#2AA876"),
        Danger:    lipgloss.Color("#D9534F"),
        Warning:   lipgloss.Color("#F0AD4E"),
        Muted:     lipgloss.Color("#6C757D"),
        MutedDark: lipgloss.Color("#5A5A5A"),
    }
}

// Styles are the lipgloss styles derived from a palette.
type Styles struct {
    Caption lipgloss.Style
    Title   lipgloss.Style
    Frame   lipgloss.Style
    Drawer  lipgloss.Style
    Faint   lipgloss.Style
    Notice  lipgloss.Style
}

// NewStyles builds the slide styles. With noColor only layout is kept.
func NewStyles(p Palette, noColor bool) Styles {
    if noColor {
        return Styles{
            Caption: lipgloss.NewStyle(),
            Title:   lipgloss.NewStyle(),
            Frame:   lipgloss.NewStyle().Padding(1, 2),
            Drawer:  lipgloss.NewStyle().Padding(1, 2),
            Faint:   lipgloss.NewStyle(),
            Notice:  lipgloss.NewStyle(),
        }
    }
    return Styles{
        Caption: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(p.Primary).Padding(0, 1),
        Title:   lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
        Frame:   lipgloss.NewStyle().Padding(1, 2),
        Drawer:  lipgloss.NewStyle().Padding(1, 2).Background(lipgloss.AdaptiveColor{Light: "255", Dark: "236"}),
        Faint:   lipgloss.NewStyle().Foreground(p.Muted),
        Notice:  lipgloss.NewStyle().Foreground(p.Warning),
    }
}
