package state

import "testing"

func TestNewDefaults(t *testing.T) {
    s := New(true)
    if s.Width != DefaultWidth || s.Height != DefaultHeight { t.Fatalf("expected default size, got %dx%d", s.Width, s.Height) }
    if !s.NoColor { t.Fatalf("expected NoColor to be kept") }
}

func TestToggleHelp(t *testing.T) {
    s := UIState{}
    s = ToggleHelp(s)
    if !s.ShowHelp { t.Fatalf("expected ShowHelp to be true") }
    s = ToggleHelp(s)
    if s.ShowHelp { t.Fatalf("expected ShowHelp to be false") }
}

func TestResizeTooSmallSetsNotice(t *testing.T) {
    s := New(false)
    s = Resize(s, 10, 30)
    if s.Width != 10 { t.Fatalf("expected width 10") }
    if s.Notice == "" { t.Fatalf("expected too-small notice") }
    s = Resize(s, 100, 30)
    if s.Notice != "" { t.Fatalf("expected notice cleared after growing, got %q", s.Notice) }
}

func TestResizeKeepsOtherNotices(t *testing.T) {
    s := SetNotice(New(false), "Copied")
    s = Resize(s, 120, 40)
    if s.Notice != "Copied" { t.Fatalf("expected unrelated notice to survive resize") }
}

func TestResizeIgnoresZero(t *testing.T) {
    s := Resize(New(false), 0, 0)
    if s.Width != DefaultWidth || s.Height != DefaultHeight { t.Fatalf("expected size unchanged") }
}

func TestClearNotice(t *testing.T) {
    s := SetNotice(UIState{}, "x")
    s = ClearNotice(s)
    if s.Notice != "" { t.Fatalf("expected empty notice") }
}
