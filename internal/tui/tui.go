package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"lightbox/internal/carousel"
	"lightbox/internal/config"
	"lightbox/internal/tui/state"
	"lightbox/internal/tui/util"
	"lightbox/internal/tui/widgets/helpoverlay"
	"lightbox/internal/tui/widgets/statusbar"
	"lightbox/internal/tui/widgets/tagchips"
)

// frameInterval paces the offset interpolation while slides move.
const frameInterval = time.Second / 30

// Options tune the viewer. Logf receives controller diagnostics.
type Options struct {
	NoColor bool
	Logf    func(format string, args ...any)
}

// Run shows the deck full-screen until the user quits.
func Run(deck *config.Deck, opts Options) error {
	m, err := newModel(deck, opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

// ===== Model =====

type frameMsg time.Time

type model struct {
	deck    *config.Deck
	ctrl    *carousel.Controller
	surface *termSurface
	sched   *teaScheduler
	md      *markdown

	keys   keyMap
	help   helpoverlay.HelpOverlay
	status statusbar.StatusBar
	styles util.Styles
	ui     state.UIState

	copyText func(string) error
	framing  bool // frame ticks in flight
}

func newModel(deck *config.Deck, opts Options) (model, error) {
	noColor := util.NoColor(opts.NoColor)
	surface := newTermSurface(len(deck.Slides), deck.Duration(), time.Now)
	sched := newTeaScheduler()
	ctrl, err := carousel.New(surface, sched,
		carousel.WithDuration(deck.Duration()),
		carousel.WithSettle(deck.Settle()),
		carousel.WithVerticalReveal(deck.Drawers),
		carousel.WithLogger(opts.Logf),
	)
	if err != nil {
		return model{}, err
	}
	return model{
		deck:     deck,
		ctrl:     ctrl,
		surface:  surface,
		sched:    sched,
		md:       newMarkdown(noColor),
		keys:     defaultKeyMap(deck.Drawers),
		help:     helpoverlay.NewHelpOverlay(),
		status:   statusbar.NewStatusBar(),
		styles:   util.NewStyles(util.DefaultPalette(), noColor),
		ui:       state.New(noColor),
		copyText: clipboard.WriteAll,
	}, nil
}

func (m model) Init() tea.Cmd { return nil }

// Update routes input to the controller and drives its timers and the frame loop.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.ui = state.ToggleHelp(m.ui)
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			m.copyCurrent()
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.dispatch(carousel.Next)
		case key.Matches(msg, m.keys.Previous):
			m.dispatch(carousel.Previous)
		case key.Matches(msg, m.keys.RevealDown):
			m.dispatch(carousel.RevealDown)
		case key.Matches(msg, m.keys.RevealUp):
			m.dispatch(carousel.RevealUp)
		default:
			return m, nil
		}
		return m, m.pump()

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			m.scroll(1)
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			m.scroll(-1)
		default:
			return m, nil
		}
		return m, m.pump()

	case timerMsg:
		m.sched.Fire(msg.id)
		return m, m.pump()

	case frameMsg:
		if m.surface.Step(time.Time(msg)) {
			return m, frameTick()
		}
		m.framing = false
		return m, nil
	}
	return m, nil
}

func (m *model) dispatch(dir carousel.Direction) {
	if m.ctrl.Request(dir) {
		m.ui = state.ClearNotice(m.ui)
	}
}

func (m *model) scroll(delta float64) {
	if m.ctrl.Scroll(delta) {
		m.ui = state.ClearNotice(m.ui)
	}
}

// pump collects scheduled timers and starts the frame loop when slides move.
func (m *model) pump() tea.Cmd {
	cmds := []tea.Cmd{m.sched.Cmd()}
	if !m.framing && m.surface.Animating() {
		m.framing = true
		cmds = append(cmds, frameTick())
	}
	return tea.Batch(cmds...)
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *model) copyCurrent() {
	snap := m.ctrl.Snapshot()
	s := m.deck.Slides[m.ctrl.Slide().Source]
	text := s.Title + "\n\n" + s.Body
	if snap.Revealed && s.Drawer != "" {
		text += "\n\n" + s.Drawer
	}
	if err := m.copyText(text); err != nil {
		m.ui = state.SetNotice(m.ui, "Copy failed: "+err.Error())
		return
	}
	m.ui = state.SetNotice(m.ui, fmt.Sprintf("Copied slide %d", snap.Current))
}

// ===== View =====

func (m model) View() string {
	width, height := m.ui.Width, m.ui.Height
	if width < state.MinWidth || height < state.MinHeight {
		return m.styles.Notice.Render("Terminal too small") + "\n"
	}
	snap := m.ctrl.Snapshot()
	cur := m.deck.Slides[m.ctrl.Slide().Source]

	helpView := m.help.View(m.ui, m.keys)
	chrome := 3 + strings.Count(helpView, "\n") + 1 // caption, chips, status, help
	vh := height - chrome
	if vh < 3 {
		vh = 3
	}

	vis := m.surface.visible()
	blocks := make(map[int][]string, len(vis))
	for _, v := range vis {
		src := m.deck.Slides[v.slide.Source]
		blocks[v.slide.Ordinal] = slideBlock(src, v.revealed, width, vh, m.styles, m.md)
	}

	var b strings.Builder
	b.WriteString(caption(cur.Title, m.surface.overlayHidden, width, m.styles) + "\n")
	b.WriteString(composeViewport(vis, blocks, width, vh) + "\n")
	b.WriteString(tagchips.View(util.ComputeTags(snap, m.ctrl.Slide().IsClone), m.ui.NoColor) + "\n")
	b.WriteString(m.styles.Faint.Render(m.status.View(m.ui, snap, m.deck.Title)) + "\n")
	b.WriteString(helpView)
	return b.String()
}
