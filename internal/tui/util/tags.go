package util

import (
    "lightbox/internal/carousel"
    "lightbox/internal/tui/state"
)

// ComputeTags derives the status chips for a controller snapshot. clone reports
// whether the front-most slide is a boundary clone.
//
// The returned slice preserves a stable order:
//   Position, Clone, Animating, Snapping, Revealing, Drawer
//
// Phase chips are mutually exclusive since the controller is in one phase at a
// time. Drawer only appears when the vertical reveal is enabled and open.
func ComputeTags(s carousel.Snapshot, clone bool) []state.Tag {
    tags := make([]state.Tag, 0, 4)

    tags = append(tags, state.Tag{Kind: state.POSITION, Value: s.Current, Total: s.RealCount})

    if clone {
        tags = append(tags, state.Tag{Kind: state.CLONE})
    }

    switch s.Phase {
    case carousel.Animating:
        tags = append(tags, state.Tag{Kind: state.ANIMATING})
    case carousel.Snapping:
        tags = append(tags, state.Tag{Kind: state.SNAPPING})
    case carousel.Revealing:
        tags = append(tags, state.Tag{Kind: state.REVEALING})
    }

    if s.Vertical && s.Revealed {
        tags = append(tags, state.Tag{Kind: state.DRAWER})
    }
    return tags
}
