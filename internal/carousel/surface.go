package carousel

import "time"

// Slide is a handle to one displayable unit on a Surface.
// Clones refer to their real slide through Source and never carry content of their own.
type Slide struct {
	Ordinal int  // position in the mounted sequence
	Source  int  // 0-based index of the real slide it shows
	IsClone bool // synthetic boundary duplicate
}

// Surface is the rendering collaborator the controller drives.
type Surface interface {
	// Enumerate returns the real slides in source order.
	Enumerate() []Slide
	// Mount installs the clone-bounded sequence.
	Mount(seq []Slide)
	// SetTransitions turns animated offset changes on or off.
	SetTransitions(enabled bool)
	// SetOffset positions a slide horizontally, in percent of the viewport width.
	SetOffset(s Slide, percent int)
	// SetRevealed shows or hides the drawer of a slide.
	SetRevealed(s Slide, revealed bool)
	// SetOverlayHidden hides or shows the shared caption overlay.
	SetOverlayHidden(hidden bool)
	// Flush commits pending repositioning before transitions are re-enabled.
	Flush()
}

// Scheduler runs fn once after d. Callbacks are never cancelled and must be
// delivered on the same goroutine that drives the controller.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}
