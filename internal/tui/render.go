package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"lightbox/internal/config"
	"lightbox/internal/tui/util"
)

// markdown renders slide bodies with glamour, caching per wrap width.
type markdown struct {
	style string
	width int
	r     *glamour.TermRenderer
	cache map[string]string
}

func newMarkdown(noColor bool) *markdown {
	style := "dark"
	if noColor {
		style = "notty"
	}
	return &markdown{style: style, cache: map[string]string{}}
}

func (md *markdown) Render(text string, width int) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	if width < 1 {
		width = 1
	}
	if md.r == nil || md.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(md.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return text
		}
		md.r, md.width = r, width
		md.cache = map[string]string{}
	}
	if out, ok := md.cache[text]; ok {
		return out
	}
	out, err := md.r.Render(text)
	if err != nil {
		out = text
	}
	out = strings.Trim(out, "\n")
	md.cache[text] = out
	return out
}

// slideBlock renders one slide as exactly height lines of width cells.
// A revealed slide shows its drawer in place of the body.
func slideBlock(s config.Slide, revealed bool, width, height int, st util.Styles, md *markdown) []string {
	frame := st.Frame
	var b strings.Builder
	inner := width - frame.GetHorizontalFrameSize()
	if revealed {
		frame = st.Drawer
		b.WriteString(st.Title.Render(util.Ellipsize("▾ "+s.Title, inner)) + "\n\n")
		b.WriteString(md.Render(s.Drawer, inner))
	} else {
		b.WriteString(st.Title.Render(util.Ellipsize(s.Title, inner)) + "\n\n")
		b.WriteString(md.Render(s.Body, inner))
	}
	out := frame.Width(width).Height(height).MaxHeight(height).MaxWidth(width).Render(b.String())
	lines := strings.Split(out, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, ln := range lines {
		if w := ansi.StringWidth(ln); w < width {
			lines[i] = ln + strings.Repeat(" ", width-w)
		}
	}
	return lines[:height]
}

type piece struct {
	lines []string
	left  int // first viewport column
	cut   int // first column inside the slide
	width int
}

// composeViewport lays the visible slides side by side according to their
// shown offsets and cuts each to the part inside the viewport.
func composeViewport(vis []slideState, blocks map[int][]string, width, height int) string {
	pieces := make([]piece, 0, len(vis))
	for _, v := range vis {
		start := int(math.Round(v.shown * float64(width) / 100))
		left, right := max(0, start), min(width, start+width)
		if right <= left {
			continue
		}
		pieces = append(pieces, piece{lines: blocks[v.slide.Ordinal], left: left, cut: left - start, width: right - left})
	}
	rows := make([]string, height)
	for r := 0; r < height; r++ {
		var b strings.Builder
		col := 0
		for _, p := range pieces {
			cut, w := p.cut, p.width
			if p.left < col {
				// rounding overlap with the previous slide
				cut += col - p.left
				w -= col - p.left
			} else if p.left > col {
				b.WriteString(strings.Repeat(" ", p.left-col))
				col = p.left
			}
			if w <= 0 {
				continue
			}
			line := ""
			if r < len(p.lines) {
				line = p.lines[r]
			}
			b.WriteString(ansi.Cut(line, cut, cut+w))
			col += w
		}
		if col < width {
			b.WriteString(strings.Repeat(" ", width-col))
		}
		rows[r] = b.String()
	}
	return strings.Join(rows, "\n")
}

// caption renders the shared overlay. It keeps its line when hidden so the
// viewport does not jump.
func caption(title string, hidden bool, width int, st util.Styles) string {
	if hidden {
		return strings.Repeat(" ", width)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Left, st.Caption.Render(util.Ellipsize(title, width-2)))
}
