// Copyright
// SPDX-License-Identifier: MIT
// lightbox: looping slide carousel for the terminal, with optional per-slide drawers
package main

import (
    "errors"
    "flag"
    "fmt"
    "log"
    "os"
    "path/filepath"
    "time"

    tea "github.com/charmbracelet/bubbletea"

    "lightbox/internal/carousel"
    cfg "lightbox/internal/config"
    appTUI "lightbox/internal/tui"
)

const Version = "0.2.0"

const (
    stateDirName = ".lightbox"
    logFileName  = "lightbox.log"

    defaultDeck     = "deck.json"
    defaultDeckYAML = "deck.yaml"
)

/* ---------- CLI ---------- */

func main() {
    if len(os.Args) < 2 {
        usage()
        return
    }
    switch os.Args[1] {
    case "help", "-h", "--help":
        if len(os.Args) > 2 {
            helpTopic(os.Args[2])
        } else {
            usage()
        }
    case "version", "--version":
        fmt.Println("lightbox", Version)
    case "init":
        cmdInit()
    case "check":
        cmdCheck()
    case "view":
        cmdView()
    default:
        usage()
    }
}

func usage() {
    fmt.Print(`lightbox ` + Version + `
Looping slide carousel for the terminal. Slides move one at a time with a short
transition; moving past either end wraps around without a visible jump.
USAGE
  lightbox <command> [options]
COMMANDS
  view         Show a deck full-screen
  init         Scaffold a sample deck.json
  check        Validate a deck and print its looping sequence
  help         Show help (try: lightbox help view)
  version      Print version
NOTES
  • Decks are JSON or YAML (by extension), or a directory of Markdown files (--dir).
  • Use -v to write diagnostics to .lightbox/lightbox.log (or --log-file PATH).
` + "\n")
}

func helpTopic(name string) {
    switch name {
    case "view":
        fmt.Print(`USAGE
  lightbox view [--deck PATH | --dir DIR] [--duration MS] [--settle MS] [--drawers]
                [--no-color] [-v] [--log-file PATH]
DESCRIPTION
  Shows the deck full-screen. Keys: ←/→ (or h/l, mouse wheel) move between slides,
  ↓/↑ (or j/k) open and close a slide's drawer when drawers are enabled, y copies
  the current slide, ? toggles help, q quits. Requests that arrive while a slide is
  still moving, or while a drawer is open, are dropped.
OPTIONS
  --deck PATH      Deck file (default: deck.json, then deck.yaml)
  --dir DIR        Directory of *.md slides (one per file, sorted by name)
  --duration MS    Transition duration (default: deck value or 500)
  --settle MS      Delay before input resumes after a wrap (default: deck value or 50)
  --drawers        Enable drawers even if the deck does not
  --no-color       Disable colors (NO_COLOR is honoured too)
  -v               Write diagnostics to the log file
  --log-file PATH  Log file (default: .lightbox/lightbox.log)
` + "\n")
    case "check":
        fmt.Print(`USAGE
  lightbox check [--deck PATH | --dir DIR]
DESCRIPTION
  Validates the deck, prints the clone-bounded sequence (clones marked with ') and
  drives a headless carousel once around the loop in both directions.
` + "\n")
    case "init":
        fmt.Print(`USAGE
  lightbox init [--deck PATH]
DESCRIPTION
  Writes a sample deck (JSON, or YAML for .yaml/.yml). Existing files are kept.
` + "\n")
    default:
        usage()
    }
}

/* ---------- commands ---------- */

func cmdInit() {
    fs := flag.NewFlagSet("init", flag.ExitOnError)
    fs.Usage = func() { helpTopic("init") }
    path := fs.String("deck", defaultDeck, "Deck file to create")
    _ = fs.Parse(os.Args[2:])

    if _, err := os.Stat(*path); !errors.Is(err, os.ErrNotExist) {
        fmt.Println(*path, "already exists; not overwriting")
        return
    }
    if err := cfg.Save(*path, cfg.Sample()); err != nil {
        fatalf("write %s: %v", *path, err)
    }
    fmt.Println("Wrote", *path)
}

func cmdCheck() {
    fs := flag.NewFlagSet("check", flag.ExitOnError)
    fs.Usage = func() { helpTopic("check") }
    deckPath := fs.String("deck", "", "Deck file")
    dir := fs.String("dir", "", "Directory of Markdown slides")
    _ = fs.Parse(os.Args[2:])

    deck := loadDeck(*deckPath, *dir)
    rep, err := checkDeck(deck)
    if err != nil {
        fatalf("%v", err)
    }
    fmt.Print(rep)
}

func cmdView() {
    fs := flag.NewFlagSet("view", flag.ExitOnError)
    fs.Usage = func() { helpTopic("view") }
    deckPath := fs.String("deck", "", "Deck file")
    dir := fs.String("dir", "", "Directory of Markdown slides")
    duration := fs.Int("duration", 0, "Transition duration in ms")
    settle := fs.Int("settle", 0, "Settle delay in ms")
    drawers := fs.Bool("drawers", false, "Enable drawers")
    noColor := fs.Bool("no-color", false, "Disable colors")
    verbose := fs.Bool("v", false, "Write diagnostics to the log file")
    logPath := fs.String("log-file", "", "Log file (implies -v)")
    _ = fs.Parse(os.Args[2:])

    deck := loadDeck(*deckPath, *dir)
    if *duration > 0 {
        deck.Transition.DurationMs = *duration
    }
    if *settle > 0 {
        deck.Transition.SettleMs = *settle
    }
    if *drawers {
        deck.Drawers = true
    }

    opts := appTUI.Options{NoColor: *noColor}
    if *verbose || *logPath != "" {
        p := *logPath
        if p == "" {
            p = filepath.Join(ensureStateDir(), logFileName)
        }
        f, err := tea.LogToFile(p, "lightbox")
        if err != nil {
            fatalf("open log file: %v", err)
        }
        defer f.Close()
        log.Printf("view: %d slides, D=%s S=%s drawers=%v", len(deck.Slides), deck.Duration(), deck.Settle(), deck.Drawers)
        opts.Logf = log.Printf
    }

    if err := appTUI.Run(deck, opts); err != nil {
        var ce *carousel.ConfigurationError
        if errors.As(err, &ce) {
            fatalf("cannot show deck: %v", err)
        }
        fatalf("%v", err)
    }
}

/* ---------- helpers ---------- */

// loadDeck resolves --dir, --deck, or the default deck files, exiting on error.
func loadDeck(path, dir string) *cfg.Deck {
    var (
        d   *cfg.Deck
        err error
    )
    switch {
    case dir != "":
        d, err = cfg.LoadDir(dir)
    case path != "":
        d, err = cfg.Load(path)
    default:
        path = defaultDeck
        if _, serr := os.Stat(path); errors.Is(serr, os.ErrNotExist) {
            if _, yerr := os.Stat(defaultDeckYAML); yerr == nil {
                path = defaultDeckYAML
            }
        }
        d, err = cfg.Load(path)
    }
    if err != nil {
        if errors.Is(err, os.ErrNotExist) {
            fatalf("%v (run 'lightbox init' to create a sample deck)", err)
        }
        fatalf("%v", err)
    }
    return d
}

func ensureStateDir() string {
    dir := filepath.Join(".", stateDirName)
    _ = os.MkdirAll(dir, 0o755)
    return dir
}

func fatalf(format string, args ...any) {
    fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
    os.Exit(1)
}

// ms renders a duration for reports.
func ms(d time.Duration) string { return fmt.Sprintf("%dms", d.Milliseconds()) }
