package config

import (
    "encoding/json"
    "fmt"
    "os"
    "path/filepath"
    "sort"
    "strings"
    "time"

    "gopkg.in/yaml.v3"
)

const (
    DefaultDurationMs = 500
    DefaultSettleMs   = 50

    // DrawerMarker separates a Markdown slide body from its drawer.
    DrawerMarker = "<!-- drawer -->"
)

// Deck is a slide deck: {"title": "...", "slides": [{"title": "...", "body": "..."}], ...}
type Deck struct {
    Title      string     `json:"title,omitempty" yaml:"title,omitempty"`
    Slides     []Slide    `json:"slides" yaml:"slides"`
    Drawers    bool       `json:"drawers,omitempty" yaml:"drawers,omitempty"` // enable vertical reveal
    Transition Transition `json:"transition,omitempty" yaml:"transition,omitempty"`
}

// Slide is one real slide. Body and Drawer are Markdown.
type Slide struct {
    Title  string `json:"title" yaml:"title"`
    Body   string `json:"body,omitempty" yaml:"body,omitempty"`
    Drawer string `json:"drawer,omitempty" yaml:"drawer,omitempty"`
}

// Transition holds the animation timings in milliseconds.
type Transition struct {
    DurationMs int `json:"duration_ms,omitempty" yaml:"duration_ms,omitempty"` // D
    SettleMs   int `json:"settle_ms,omitempty" yaml:"settle_ms,omitempty"`     // S
}

// Load reads a deck from JSON, or YAML when the extension is .yaml/.yml.
func Load(path string) (*Deck, error) {
    data, err := os.ReadFile(path)
    if err != nil {
        return nil, fmt.Errorf("read deck: %w", err)
    }
    var d Deck
    if isYAML(path) {
        if err := yaml.Unmarshal(data, &d); err != nil {
            return nil, fmt.Errorf("parse deck YAML: %w", err)
        }
    } else {
        if err := json.Unmarshal(data, &d); err != nil {
            return nil, fmt.Errorf("parse deck JSON: %w", err)
        }
    }
    if err := d.Validate(); err != nil {
        return nil, err
    }
    return &d, nil
}

// LoadDir builds a deck from the *.md files of dir, one slide per file in name order.
// The first "# " heading is the title (file name otherwise); text after a line
// holding DrawerMarker becomes the drawer.
func LoadDir(dir string) (*Deck, error) {
    matches, err := filepath.Glob(filepath.Join(dir, "*.md"))
    if err != nil {
        return nil, fmt.Errorf("list slides: %w", err)
    }
    sort.Strings(matches)
    d := Deck{Title: filepath.Base(dir)}
    for _, p := range matches {
        data, err := os.ReadFile(p)
        if err != nil {
            return nil, fmt.Errorf("read slide: %w", err)
        }
        d.Slides = append(d.Slides, parseMarkdownSlide(strings.TrimSuffix(filepath.Base(p), ".md"), string(data)))
    }
    for _, s := range d.Slides {
        if s.Drawer != "" {
            d.Drawers = true
            break
        }
    }
    if err := d.Validate(); err != nil {
        return nil, err
    }
    return &d, nil
}

func parseMarkdownSlide(name, text string) Slide {
    s := Slide{Title: name}
    body := text
    if i := strings.Index(text, DrawerMarker); i >= 0 {
        body = text[:i]
        s.Drawer = strings.TrimSpace(text[i+len(DrawerMarker):])
    }
    lines := strings.Split(body, "\n")
    for i, ln := range lines {
        if strings.HasPrefix(ln, "# ") {
            s.Title = strings.TrimSpace(strings.TrimPrefix(ln, "# "))
            lines = append(lines[:i], lines[i+1:]...)
            break
        }
    }
    s.Body = strings.TrimSpace(strings.Join(lines, "\n"))
    return s
}

// Validate checks the deck and fills in default timings.
func (d *Deck) Validate() error {
    if len(d.Slides) == 0 {
        return fmt.Errorf("deck has no slides")
    }
    for i, s := range d.Slides {
        if strings.TrimSpace(s.Title) == "" && strings.TrimSpace(s.Body) == "" {
            return fmt.Errorf("slide %d is empty", i+1)
        }
    }
    if d.Transition.DurationMs < 0 || d.Transition.SettleMs < 0 {
        return fmt.Errorf("transition timings must be >= 0")
    }
    if d.Transition.DurationMs == 0 {
        d.Transition.DurationMs = DefaultDurationMs
    }
    if d.Transition.SettleMs == 0 {
        d.Transition.SettleMs = DefaultSettleMs
    }
    return nil
}

// Duration returns the transition duration D.
func (d *Deck) Duration() time.Duration {
    return time.Duration(d.Transition.DurationMs) * time.Millisecond
}

// Settle returns the delay S before transitions come back after a snap.
func (d *Deck) Settle() time.Duration {
    return time.Duration(d.Transition.SettleMs) * time.Millisecond
}

// Clone copies the deck (slides are values).
func Clone(d *Deck) *Deck {
    out := *d
    out.Slides = append([]Slide(nil), d.Slides...)
    return &out
}

// Save writes the deck as JSON, or YAML when the extension is .yaml/.yml.
func Save(path string, d *Deck) error {
    var (
        data []byte
        err  error
    )
    if isYAML(path) {
        data, err = yaml.Marshal(d)
    } else {
        data, err = json.MarshalIndent(d, "", "  ")
    }
    if err != nil {
        return err
    }
    return os.WriteFile(path, data, 0644)
}

// Sample returns the deck written by `lightbox init`.
func Sample() *Deck {
    return &Deck{
        Title:   "lightbox",
        Drawers: true,
        Slides: []Slide{
            {Title: "Welcome", Body: "Use **←/→** or the mouse wheel to move between slides.", Drawer: "Press **↑** to close this drawer."},
            {Title: "Looping", Body: "Moving past the last slide wraps around to the first one.", Drawer: "The wrap is masked by a duplicate frame at each end."},
            {Title: "Drawers", Body: "Press **↓** to open the drawer under a slide.", Drawer: "While a drawer is open, horizontal moves are ignored."},
        },
        Transition: Transition{DurationMs: DefaultDurationMs, SettleMs: DefaultSettleMs},
    }
}

func isYAML(path string) bool {
    ext := strings.ToLower(filepath.Ext(path))
    return ext == ".yaml" || ext == ".yml"
}
