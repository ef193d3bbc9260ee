package carousel

import "time"

const (
	DefaultDuration = 500 * time.Millisecond
	DefaultSettle   = 50 * time.Millisecond
)

// Phase is the controller's transition state.
type Phase int

const (
	Idle      Phase = iota
	Animating       // horizontal move in flight
	Snapping        // landed on a clone, waiting for transitions to come back
	Revealing       // drawer move in flight
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Animating:
		return "animating"
	case Snapping:
		return "snapping"
	case Revealing:
		return "revealing"
	default:
		return "unknown"
	}
}

// Direction is a navigation request.
type Direction int

const (
	Next Direction = iota
	Previous
	RevealDown
	RevealUp
)

func (d Direction) String() string {
	switch d {
	case Next:
		return "next"
	case Previous:
		return "previous"
	case RevealDown:
		return "reveal-down"
	case RevealUp:
		return "reveal-up"
	default:
		return "unknown"
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithDuration sets the transition duration D.
func WithDuration(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.duration = d
		}
	}
}

// WithSettle sets the delay S before transitions are re-enabled after a snap.
func WithSettle(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.settleDelay = d
		}
	}
}

// WithVerticalReveal enables the per-slide drawer.
func WithVerticalReveal(enabled bool) Option {
	return func(c *Controller) { c.vertical = enabled }
}

// WithLogger sets a printf-style logger for ignored requests and phase changes.
func WithLogger(logf func(format string, args ...any)) Option {
	return func(c *Controller) {
		if logf != nil {
			c.logf = logf
		}
	}
}

// Controller is the slide-position state machine. It owns its state exclusively
// and is driven from a single goroutine.
type Controller struct {
	surface     Surface
	sched       Scheduler
	logf        func(format string, args ...any)
	duration    time.Duration
	settleDelay time.Duration
	vertical    bool

	seq           []Slide
	realCount     int
	index         int
	phase         Phase
	revealed      []bool
	overlayHidden bool
}

// Snapshot is a read-only copy of the controller state.
type Snapshot struct {
	Index         int
	Current       int
	RealCount     int
	Phase         Phase
	Revealed      bool
	OverlayHidden bool
	Vertical      bool
}

// New mounts the clone-bounded sequence on surface and shows the first real slide.
func New(surface Surface, sched Scheduler, opts ...Option) (*Controller, error) {
	if surface == nil {
		return nil, configErr("nil surface")
	}
	if sched == nil {
		return nil, configErr("nil scheduler")
	}
	c := &Controller{
		surface:     surface,
		sched:       sched,
		logf:        func(string, ...any) {},
		duration:    DefaultDuration,
		settleDelay: DefaultSettle,
	}
	for _, o := range opts {
		o(c)
	}

	slides := surface.Enumerate()
	if len(slides) == 0 {
		return nil, configErr("no real slides")
	}
	c.realCount = len(slides)
	c.seq = BuildSequence(slides)
	c.revealed = make([]bool, len(c.seq))
	c.index = 1

	surface.Mount(c.seq)
	surface.SetTransitions(false)
	c.render()
	surface.Flush()
	surface.SetTransitions(true)
	c.logf("carousel: mounted %d slides (%d real)", len(c.seq), c.realCount)
	return c, nil
}

// Request dispatches a directional request. It reports whether it was accepted.
func (c *Controller) Request(dir Direction) bool {
	switch dir {
	case Next:
		return c.Next()
	case Previous:
		return c.Previous()
	case RevealDown:
		return c.RevealDown()
	case RevealUp:
		return c.RevealUp()
	}
	return false
}

// Scroll turns a scroll delta into Next (positive) or Previous (negative).
func (c *Controller) Scroll(delta float64) bool {
	switch {
	case delta > 0:
		return c.Next()
	case delta < 0:
		return c.Previous()
	}
	return false
}

// Next moves one slide forward.
func (c *Controller) Next() bool { return c.move(Next, 1) }

// Previous moves one slide back.
func (c *Controller) Previous() bool { return c.move(Previous, -1) }

func (c *Controller) move(dir Direction, delta int) bool {
	if c.phase != Idle {
		c.logf("carousel: %s ignored (%s)", dir, c.phase)
		return false
	}
	if c.vertical && c.revealed[c.index] {
		c.logf("carousel: %s ignored (drawer open at %d)", dir, c.index)
		return false
	}
	c.showSlide(c.index + delta)
	return true
}

func (c *Controller) showSlide(index int) {
	if c.vertical {
		if c.revealed[index] {
			c.revealed[index] = false
			c.surface.SetRevealed(c.seq[index], false)
		}
		c.setOverlayHidden(false)
	}
	c.phase = Animating
	c.index = index
	c.render()
	c.sched.AfterFunc(c.duration, c.settle)
}

// settle snaps a clone landing back onto its real slide. Calling it again after
// the snap leaves the index unchanged.
func (c *Controller) settle() {
	target, clone := Resolve(c.index, c.realCount)
	if !clone {
		c.phase = Idle
		return
	}
	c.logf("carousel: snap %d -> %d", c.index, target)
	c.phase = Snapping
	c.index = target
	if c.vertical && c.revealed[target] {
		c.revealed[target] = false
		c.surface.SetRevealed(c.seq[target], false)
	}
	c.surface.SetTransitions(false)
	c.render()
	c.surface.Flush()
	c.sched.AfterFunc(c.settleDelay, func() {
		c.surface.SetTransitions(true)
		c.phase = Idle
	})
}

// RevealDown opens the drawer of the current slide.
func (c *Controller) RevealDown() bool { return c.reveal(RevealDown, true) }

// RevealUp closes the drawer of the current slide.
func (c *Controller) RevealUp() bool { return c.reveal(RevealUp, false) }

func (c *Controller) reveal(dir Direction, open bool) bool {
	if !c.vertical {
		return false
	}
	if c.phase != Idle {
		c.logf("carousel: %s ignored (%s)", dir, c.phase)
		return false
	}
	if c.revealed[c.index] == open {
		return false
	}
	c.revealed[c.index] = open
	c.surface.SetRevealed(c.seq[c.index], open)
	c.setOverlayHidden(open)
	c.phase = Revealing
	c.sched.AfterFunc(c.duration, func() { c.phase = Idle })
	return true
}

func (c *Controller) setOverlayHidden(hidden bool) {
	if c.overlayHidden == hidden {
		return
	}
	c.overlayHidden = hidden
	c.surface.SetOverlayHidden(hidden)
}

func (c *Controller) render() {
	for _, s := range c.seq {
		c.surface.SetOffset(s, Offset(s.Ordinal, c.index))
	}
}

// Index returns the position in the clone-bounded sequence.
func (c *Controller) Index() int { return c.index }

// Current returns the 1-based real slide currently shown.
func (c *Controller) Current() int {
	n, _ := Resolve(c.index, c.realCount)
	return n
}

// RealCount returns the number of real slides.
func (c *Controller) RealCount() int { return c.realCount }

// Phase returns the transition state.
func (c *Controller) Phase() Phase { return c.phase }

// Transitioning reports whether input is currently locked out.
func (c *Controller) Transitioning() bool { return c.phase != Idle }

// Revealed reports the drawer state of the slide at ordinal.
func (c *Controller) Revealed(ordinal int) bool {
	if ordinal < 0 || ordinal >= len(c.revealed) {
		return false
	}
	return c.revealed[ordinal]
}

// OverlayHidden reports whether the shared overlay is hidden.
func (c *Controller) OverlayHidden() bool { return c.overlayHidden }

// Sequence returns a copy of the mounted sequence.
func (c *Controller) Sequence() []Slide {
	return append([]Slide(nil), c.seq...)
}

// Slide returns the slide currently front-most.
func (c *Controller) Slide() Slide { return c.seq[c.index] }

// Snapshot copies the state for rendering.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Index:         c.index,
		Current:       c.Current(),
		RealCount:     c.realCount,
		Phase:         c.phase,
		Revealed:      c.revealed[c.index],
		OverlayHidden: c.overlayHidden,
		Vertical:      c.vertical,
	}
}
