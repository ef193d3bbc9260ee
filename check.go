package main

import (
    "fmt"
    "strings"

    "lightbox/internal/carousel"
    cfg "lightbox/internal/config"
)

// deckSurface is a headless carousel.Surface that only tracks offsets.
type deckSurface struct {
    count   int
    offsets map[int]int
}

func (s *deckSurface) Enumerate() []carousel.Slide {
    out := make([]carousel.Slide, s.count)
    for i := range out {
        out[i] = carousel.Slide{Source: i}
    }
    return out
}

func (s *deckSurface) Mount(seq []carousel.Slide)              { s.offsets = make(map[int]int, len(seq)) }
func (s *deckSurface) SetTransitions(bool)                     {}
func (s *deckSurface) SetOffset(sl carousel.Slide, offset int) { s.offsets[sl.Ordinal] = offset }
func (s *deckSurface) SetRevealed(carousel.Slide, bool)        {}
func (s *deckSurface) SetOverlayHidden(bool)                   {}
func (s *deckSurface) Flush()                                  {}

// sequenceLine renders the clone-bounded sequence, marking clones with a quote.
func sequenceLine(deck *cfg.Deck) string {
    seq := carousel.BuildSequence((&deckSurface{count: len(deck.Slides)}).Enumerate())
    parts := make([]string, len(seq))
    for i, sl := range seq {
        label := deck.Slides[sl.Source].Title
        if strings.TrimSpace(label) == "" {
            label = fmt.Sprintf("#%d", sl.Source+1)
        }
        if sl.IsClone {
            label += "'"
        }
        parts[i] = label
    }
    return strings.Join(parts, " ")
}

// checkDeck drives a headless carousel once around the loop in each direction.
func checkDeck(deck *cfg.Deck) (string, error) {
    surface := &deckSurface{count: len(deck.Slides)}
    sched := carousel.NewManualScheduler()
    ctrl, err := carousel.New(surface, sched,
        carousel.WithDuration(deck.Duration()),
        carousel.WithSettle(deck.Settle()),
        carousel.WithVerticalReveal(deck.Drawers),
    )
    if err != nil {
        return "", err
    }

    loop := func(dir carousel.Direction) error {
        for i := 0; i < ctrl.RealCount(); i++ {
            if !ctrl.Request(dir) {
                return fmt.Errorf("%s request %d was rejected", dir, i+1)
            }
            sched.Flush()
        }
        if ctrl.Index() != 1 || surface.offsets[1] != 0 {
            return fmt.Errorf("%s loop ended at index %d, want 1", dir, ctrl.Index())
        }
        return nil
    }
    if err := loop(carousel.Next); err != nil {
        return "", err
    }
    if err := loop(carousel.Previous); err != nil {
        return "", err
    }
    if deck.Drawers {
        ctrl.RevealDown()
        sched.Flush()
        if ctrl.Next() {
            return "", fmt.Errorf("horizontal move accepted with a drawer open")
        }
        ctrl.RevealUp()
        sched.Flush()
    }

    var b strings.Builder
    title := deck.Title
    if title == "" {
        title = "(untitled)"
    }
    drawers := "off"
    if deck.Drawers {
        drawers = "on"
    }
    fmt.Fprintf(&b, "Deck:     %s (%d slides, drawers %s)\n", title, len(deck.Slides), drawers)
    fmt.Fprintf(&b, "Sequence: %s\n", sequenceLine(deck))
    fmt.Fprintf(&b, "Timing:   D=%s S=%s\n", ms(deck.Duration()), ms(deck.Settle()))
    fmt.Fprintf(&b, "Loop:     ok (%v of virtual time)\n", sched.Now())
    return b.String(), nil
}
