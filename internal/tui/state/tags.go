package state

// TagKind enumerates the status chips shown under the viewport.
type TagKind int

const (
    // Stable ordering for display: Position, Clone, Animating, Snapping, Revealing, Drawer
    POSITION TagKind = iota
    CLONE
    ANIMATING
    SNAPPING
    REVEALING
    DRAWER
)

// Tag represents a single status chip. POSITION carries the current real slide
// in Value and the real slide count in Total; other kinds leave both at 0.
type Tag struct {
    Kind  TagKind
    Value int
    Total int
}
