package statusbar

import (
    "fmt"
    "strings"

    "lightbox/internal/carousel"
    "lightbox/internal/tui/state"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line: position dots, deck title, size, notice.
func (StatusBar) View(s state.UIState, snap carousel.Snapshot, title string) string {
    parts := []string{Dots(snap.Current, snap.RealCount)}
    if title != "" {
        parts = append(parts, title)
    }
    if snap.Vertical {
        parts = append(parts, "Drawers: On")
    }
    parts = append(parts, fmt.Sprintf("W:%d H:%d", s.Width, s.Height))
    if s.Notice != "" {
        parts = append(parts, s.Notice)
    }
    return strings.Join(parts, "  ")
}

// Dots renders one marker per real slide with the current one filled.
// Decks too long for dots fall back to a counter.
func Dots(current, total int) string {
    const maxDots = 12
    if total > maxDots {
        return fmt.Sprintf("%d/%d", current, total)
    }
    var b strings.Builder
    for i := 1; i <= total; i++ {
        if i > 1 {
            b.WriteString(" ")
        }
        if i == current {
            b.WriteString("●")
        } else {
            b.WriteString("○")
        }
    }
    return b.String()
}
