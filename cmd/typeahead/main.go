// Copyright 2025 The Typeahead Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the typeahead demo and line-mode CLI application.

Typeahead provides a suggestion controller for text fields: debounced
querying of a word source, a dropdown of ranked candidates, and a
highlight/select state machine that previews and commits choices. The
default mode runs an interactive terminal widget backed by a Patricia
trie dictionary; line mode reads prefixes from stdin for testing and
debugging.

# Usage

Run the interactive widget with the builtin word list:

	typeahead

Load a dictionary file and enable debug logging:

	typeahead -data /path/to/words.txt -d

Run in line mode for scripted testing:

	typeahead -line -limit 10 -min 2

The dictionary file is plain text with one word per line and an optional
frequency count:

	hello 9500
	help 8200
	helm 1200

Blank lines and lines starting with # are skipped. Without a frequency
the word gets a neutral rank.

# Configuration

Runtime configuration is managed through a TOML file that supports widget
behavior, dictionary settings, and line-mode defaults:

	[widget]
	min_chars = 1
	delay_ms = 300
	max_suggestions = 24
	max_visible = 8

	[dict]
	max_words = 50000
	cache_entries = 256

The config file is automatically created with defaults if it doesn't
exist. Flags override whatever the file provides.

# Widget Mode

The default mode starts a bubbletea program hosting one input/dropdown
pair. Typing queues a debounced fetch against the trie source, arrow keys
walk the dropdown with value preview, enter commits the highlighted word
and escape dismisses the list. The controller's open/close/highlight
callbacks are wired to program.Send so asynchronous completions repaint
without waiting for the next input event.

# Line Mode

Line mode reads one prefix per line from stdin and prints suggestions
with frequency information. It shares the source and cache with widget
mode and is primarily intended for development and testing.

# Command Line Flags

The following flags control application behavior:

	-data string
	    Dictionary text file to load (builtin word list when empty)
	-config string
	    Config file path (default resolved under the user config dir)
	-d  Enable debug mode with detailed logging
	-limit int
	    Number of suggestions to return (default from config)
	-min int
	    Minimum prefix length before fetching
	-delay int
	    Debounce delay in milliseconds
	-line
	    Run line mode instead of the interactive widget
	-version
	    Show current version
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/bastiangx/typeahead/internal/cli"
	"github.com/bastiangx/typeahead/pkg/config"
	"github.com/bastiangx/typeahead/pkg/source"
	"github.com/bastiangx/typeahead/pkg/typeahead"
	"github.com/bastiangx/typeahead/pkg/typeahead/widget"
)

const (
	Version = "0.3.0-beta"
	AppName = "typeahead"
	gh      = "https://github.com/bastiangx/typeahead"
)

// builtinWords seeds the source when no dictionary file is given, enough
// to make the demo usable out of the box.
var builtinWords = map[string]int{
	"the": 9500, "then": 6100, "there": 7400, "these": 6800, "they": 8300,
	"that": 9100, "this": 9000, "those": 5200, "through": 4800,
	"hello": 6200, "help": 7100, "helm": 1200, "held": 3400, "her": 7900,
	"here": 7300, "hero": 2100, "world": 5600, "word": 6400, "work": 8100,
	"would": 8600, "write": 5900, "wrong": 4200, "with": 9200, "which": 8000,
	"what": 8500, "when": 8400, "where": 7600, "while": 6600, "white": 4500,
	"about": 8200, "above": 4100, "after": 7500, "again": 6300, "also": 7700,
	"always": 5800, "and": 9400, "another": 5500, "answer": 4400,
	"because": 7200, "become": 4700, "before": 6900, "between": 5700,
}

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// app hosts the widget inside a root bubbletea model so the demo can own
// quit keys and display the last submitted value.
type app struct {
	w          *widget.Model[source.Suggestion]
	lastSubmit string
}

func (a app) Init() tea.Cmd {
	return a.w.Init()
}

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+d":
			a.w.Controller().Destroy()
			return a, tea.Quit
		}
	case widget.SubmitMsg:
		a.lastSubmit = msg.Value
		return a, nil
	}
	_, cmd := a.w.Update(msg)
	return a, cmd
}

func (a app) View() string {
	v := a.w.View()
	if a.lastSubmit != "" {
		v += "\n\nsubmitted: " + a.lastSubmit
	}
	return v + "\n\nctrl+c to exit"
}

// main calls other packages to run the widget or line mode inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	// custom Flags
	showVersion := flag.Bool("version", false, "Show current version")
	dataPath := flag.String("data", "", "Dictionary text file to load (builtin list when empty)")
	configPath := flag.String("config", "", "Config file path")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of suggestions to return")
	minChars := flag.Int("min", defaultConfig.Widget.MinChars, "Minimum prefix length before fetching")
	delayMs := flag.Int("delay", defaultConfig.Widget.DelayMs, "Debounce delay in milliseconds")
	lineMode := flag.Bool("line", false, "Run line mode -- useful for testing and debugging")

	flag.Parse()

	if *showVersion {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    false,
			ReportTimestamp: false,
			Prefix:          "",
		})

		styles := log.DefaultStyles()

		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

		logger.SetStyles(styles)

		logger.Print("")
		logger.Print("[ Typeahead ] Suggestions as you type!")
		logger.Print("", "version", Version)
		logger.Print("")
		logger.Print("use -h or --help to see available options")
		logger.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, usedPath := config.LoadConfigWithPriority(*configPath)
	if usedPath != "" {
		log.Debugf("Using config file: (%s)", usedPath)
	}

	words := source.NewWords()
	path := *dataPath
	if path == "" {
		path = cfg.Dict.Path
	}
	if path != "" {
		n, err := source.LoadFile(words, path, cfg.Dict.MaxWords)
		if err != nil {
			log.Warnf("Failed to load dictionary %s: %v, using builtin words", path, err)
		} else {
			log.Debugf("Loaded %d words from %s", n, path)
		}
	}
	if words.Len() == 0 {
		for w, freq := range builtinWords {
			words.AddWord(w, freq)
		}
		log.Debugf("Seeded builtin word list: %d words", words.Len())
	}

	completer := source.NewCached(words, cfg.Dict.CacheEntries)

	// Line mode shares the source and cache with the widget so anything
	// tested here behaves identically in the interactive path.
	if *lineMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"minPrefix", *minChars,
			"maxPrefix", cfg.CLI.DefaultMaxLen,
			"limit", *limit)

		lineHandler := cli.NewLineHandler(completer, *minChars, cfg.CLI.DefaultMaxLen, *limit)
		if err := lineHandler.Start(os.Stdin); err != nil {
			log.Fatalf("line mode error: %v", err)
		}
		return
	}

	var program *tea.Program
	redraw := func() {
		if program != nil {
			program.Send(widget.RedrawMsg{})
		}
	}

	w, err := widget.New(typeahead.Config[source.Suggestion]{
		GetSuggestions: source.Async(completer, *limit),
		RenderItem: func(s source.Suggestion, term string) string {
			return s.Word
		},
		ValueOnSelect: func(s source.Suggestion, term string) string {
			return s.Word + " "
		},
		ValueOnHighlight: func(s source.Suggestion, term string) string {
			return s.Word
		},
		MinChars:       *minChars,
		Delay:          time.Duration(*delayMs) * time.Millisecond,
		MaxSuggestions: cfg.Widget.MaxSuggestions,
		MaxVisible:     cfg.Widget.MaxVisible,
		OnOpen:         redraw,
		OnClose:        redraw,
		OnHighlight:    redraw,
	})
	if err != nil {
		log.Fatalf("Failed to build widget: %v", err)
	}

	program = tea.NewProgram(app{w: w}, tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		log.Fatalf("Failed to run program: %v", err)
	}
}
