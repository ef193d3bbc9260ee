package config

import (
    "os"
    "path/filepath"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
    t.Helper()
    p := filepath.Join(dir, name)
    require.NoError(t, os.WriteFile(p, []byte(content), 0644))
    return p
}

func TestLoadJSON(t *testing.T) {
    p := writeFile(t, t.TempDir(), "deck.json", `{
  "title": "demo",
  "slides": [{"title": "A", "body": "first"}, {"title": "B", "drawer": "more"}],
  "drawers": true,
  "transition": {"duration_ms": 300}
}`)
    d, err := Load(p)
    require.NoError(t, err)
    assert.Equal(t, "demo", d.Title)
    require.Len(t, d.Slides, 2)
    assert.Equal(t, "more", d.Slides[1].Drawer)
    assert.True(t, d.Drawers)
    assert.Equal(t, 300*time.Millisecond, d.Duration())
    assert.Equal(t, DefaultSettleMs*time.Millisecond, d.Settle())
}

func TestLoadYAML(t *testing.T) {
    p := writeFile(t, t.TempDir(), "deck.yaml", `
title: demo
slides:
  - title: A
    body: first
  - title: B
    body: second
transition:
  settle_ms: 20
`)
    d, err := Load(p)
    require.NoError(t, err)
    require.Len(t, d.Slides, 2)
    assert.Equal(t, "second", d.Slides[1].Body)
    assert.Equal(t, DefaultDurationMs*time.Millisecond, d.Duration())
    assert.Equal(t, 20*time.Millisecond, d.Settle())
}

func TestLoadErrors(t *testing.T) {
    dir := t.TempDir()
    tests := []struct {
        name    string
        file    string
        content string
        want    string
    }{
        {"no slides", "empty.json", `{"slides": []}`, "deck has no slides"},
        {"bad json", "bad.json", `{`, "parse deck JSON"},
        {"bad yaml", "bad.yml", "slides: [", "parse deck YAML"},
        {"empty slide", "blank.json", `{"slides": [{"title": " "}]}`, "slide 1 is empty"},
        {"negative timing", "neg.json", `{"slides": [{"title": "A"}], "transition": {"duration_ms": -1}}`, "timings"},
    }
    for _, tc := range tests {
        t.Run(tc.name, func(t *testing.T) {
            _, err := Load(writeFile(t, dir, tc.file, tc.content))
            require.Error(t, err)
            assert.Contains(t, err.Error(), tc.want)
        })
    }

    _, err := Load(filepath.Join(dir, "missing.json"))
    require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadDir(t *testing.T) {
    dir := t.TempDir()
    writeFile(t, dir, "02-second.md", "# Second\n\nbody two\n")
    writeFile(t, dir, "01-first.md", "intro text\n"+DrawerMarker+"\nhidden notes\n")
    writeFile(t, dir, "notes.txt", "ignored")

    d, err := LoadDir(dir)
    require.NoError(t, err)
    require.Len(t, d.Slides, 2)
    assert.Equal(t, "01-first", d.Slides[0].Title)
    assert.Equal(t, "intro text", d.Slides[0].Body)
    assert.Equal(t, "hidden notes", d.Slides[0].Drawer)
    assert.Equal(t, "Second", d.Slides[1].Title)
    assert.Equal(t, "body two", d.Slides[1].Body)
    assert.True(t, d.Drawers, "a drawer in any slide enables drawers")
}

func TestLoadDirEmpty(t *testing.T) {
    _, err := LoadDir(t.TempDir())
    require.Error(t, err)
    assert.Contains(t, err.Error(), "deck has no slides")
}

func TestSaveAndCloneSample(t *testing.T) {
    dir := t.TempDir()
    for _, name := range []string{"deck.json", "deck.yaml"} {
        p := filepath.Join(dir, name)
        require.NoError(t, Save(p, Sample()))
        d, err := Load(p)
        require.NoError(t, err)
        assert.Equal(t, Sample(), d, name)
    }

    orig := Sample()
    cp := Clone(orig)
    cp.Slides[0].Title = "changed"
    assert.Equal(t, "Welcome", orig.Slides[0].Title)
}
