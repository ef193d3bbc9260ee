package state

// Resize updates the terminal size and sets a notice when it is too small to
// show a slide. Non-positive sizes are ignored.
func Resize(s UIState, width, height int) UIState {
    if width > 0 {
        s.Width = width
    }
    if height > 0 {
        s.Height = height
    }
    if s.Width < MinWidth || s.Height < MinHeight {
        s.Notice = "Terminal too small"
    } else if s.Notice == "Terminal too small" {
        s.Notice = ""
    }
    return s
}

// ToggleHelp flips between the short and full key help.
func ToggleHelp(s UIState) UIState {
    s.ShowHelp = !s.ShowHelp
    return s
}

// SetNotice replaces the ephemeral status message.
func SetNotice(s UIState, notice string) UIState {
    s.Notice = notice
    return s
}

// ClearNotice drops the ephemeral status message.
func ClearNotice(s UIState) UIState {
    s.Notice = ""
    return s
}
