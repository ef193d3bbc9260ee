package state

// UIState holds cross-widget UI state used by the status bar, chips, and help.
type UIState struct {
    // Layout
    Width  int
    Height int

    // View toggles
    ShowHelp bool
    NoColor  bool

    // Notices and ephemeral messages
    Notice string
}

// Layout defaults used until the first WindowSizeMsg arrives.
const (
    DefaultWidth  = 80
    DefaultHeight = 24
    MinWidth      = 24
    MinHeight     = 8
)

// New returns the initial UI state.
func New(noColor bool) UIState {
    return UIState{Width: DefaultWidth, Height: DefaultHeight, NoColor: noColor}
}
