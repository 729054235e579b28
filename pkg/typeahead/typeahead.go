// Package typeahead implements the suggestion controller that drives a
// typeahead text field: debounced querying of a caller supplied suggestion
// source, an index aligned list of rendered candidates, and the
// highlight/select state machine that previews and commits choices into the
// field. The controller is UI-framework agnostic; pkg/typeahead/widget wires
// it into a bubbletea program.
package typeahead

import (
	"fmt"
	"sync"
	"time"
)

// none marks an empty highlight or selection slot.
const none = -1

// Field is the handle to the text entry element the controller is bound to.
// A bubbles textinput satisfies this through the widget adapter.
type Field interface {
	Value() string
	SetValue(string)
	Focused() bool
}

// Config carries the frozen, construction-time options for a controller.
// Field, GetSuggestions, RenderItem, ValueOnSelect and ValueOnHighlight are
// required; everything else has defaults.
type Config[S any] struct {
	// Field is the text entry element the controller reads terms from and
	// writes previews/selections into.
	Field Field

	// GetSuggestions queries the external suggestion source for a term.
	// Results are handed back through deliver, possibly much later and from
	// any goroutine; delivering nil or an empty slice closes the list.
	GetSuggestions func(term string, deliver func([]S))

	// RenderItem produces the display markup for one suggestion.
	RenderItem func(s S, term string) string

	// ValueOnSelect returns the field text after committing a suggestion.
	ValueOnSelect func(s S, term string) string

	// ValueOnHighlight returns the field text previewed while a suggestion
	// is highlighted but not yet committed.
	ValueOnHighlight func(s S, term string) string

	// MinChars is the minimum term length (in runes) before any fetch is
	// attempted. Defaults to 1.
	MinChars int

	// Delay is the debounce interval between the last qualifying keystroke
	// and the source invocation. Defaults to 300ms.
	Delay time.Duration

	// MaxSuggestions caps the stored suggestion set. 0 means unlimited.
	MaxSuggestions int

	// MaxVisible is the dropdown viewport height in rows. Defaults to 8.
	MaxVisible int

	// Lifecycle callbacks, all optional and invoked with no arguments.
	OnInit      func()
	OnOpen      func()
	OnClose     func()
	OnSelect    func()
	OnHighlight func()
	OnSubmit    func()
	OnDestroy   func()
}

// Controller owns the full suggestion lifecycle for exactly one field/list
// pair. All exported methods are safe to call from the goroutine delivering
// UI events as well as from timer and source completion goroutines; a single
// mutex serializes every transition.
type Controller[S any] struct {
	cfg Config[S]

	mu          sync.Mutex
	initialized bool
	suggestions []S
	items       []string
	highlighted int
	selected    int
	saved       *string
	opened      bool
	fetchedOnce bool
	timer       *time.Timer
	gen         uint64
	view        viewport
}

// New validates cfg and returns a controller. Validation is fail fast: a
// missing required option produces an error naming the option before any
// state is touched.
func New[S any](cfg Config[S]) (*Controller[S], error) {
	if cfg.Field == nil {
		return nil, fmt.Errorf("typeahead: Field is required and must be a text field handle")
	}
	if cfg.GetSuggestions == nil {
		return nil, fmt.Errorf("typeahead: GetSuggestions is required and must be invocable")
	}
	if cfg.RenderItem == nil {
		return nil, fmt.Errorf("typeahead: RenderItem is required and must be invocable")
	}
	if cfg.ValueOnSelect == nil {
		return nil, fmt.Errorf("typeahead: ValueOnSelect is required and must be invocable")
	}
	if cfg.ValueOnHighlight == nil {
		return nil, fmt.Errorf("typeahead: ValueOnHighlight is required and must be invocable")
	}
	if cfg.MinChars <= 0 {
		cfg.MinChars = 1
	}
	if cfg.Delay <= 0 {
		cfg.Delay = 300 * time.Millisecond
	}
	if cfg.MaxVisible <= 0 {
		cfg.MaxVisible = 8
	}
	return &Controller[S]{
		cfg:         cfg,
		highlighted: none,
		selected:    none,
	}, nil
}

// Init prepares the controller for use. Calling it on an already
// initialized controller is a no-op.
func (c *Controller[S]) Init() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized {
		return
	}
	c.highlighted = none
	c.selected = none
	c.view = viewport{visible: c.cfg.MaxVisible}
	c.initialized = true
	if c.cfg.OnInit != nil {
		c.cfg.OnInit()
	}
}

// Destroy reverses Init: it cancels any pending fetch, clears every piece of
// mutable state and marks the controller uninitialized. Safe to call
// repeatedly and mid-fetch; a source completion arriving after Destroy is
// silently dropped.
func (c *Controller[S]) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.suggestions = nil
	c.items = nil
	c.highlighted = none
	c.selected = none
	c.saved = nil
	c.opened = false
	c.fetchedOnce = false
	c.view.Reset()
	c.initialized = false
	if c.cfg.OnDestroy != nil {
		c.cfg.OnDestroy()
	}
}

// Initialized reports whether Init has run without a matching Destroy.
func (c *Controller[S]) Initialized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

// Open reports whether the dropdown is currently shown.
func (c *Controller[S]) Open() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opened
}

// Highlighted returns the highlighted suggestion index, or -1 when nothing
// is highlighted.
func (c *Controller[S]) Highlighted() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.highlighted
}

// Items returns a copy of the rendered item views, index aligned with the
// current suggestion set.
func (c *Controller[S]) Items() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.items))
	copy(out, c.items)
	return out
}

// Suggestions returns a copy of the current suggestion set.
func (c *Controller[S]) Suggestions() []S {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]S, len(c.suggestions))
	copy(out, c.suggestions)
	return out
}

// VisibleWindow returns the half-open [start, end) item range the dropdown
// viewport currently shows.
func (c *Controller[S]) VisibleWindow() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view.Window(len(c.items))
}

// RenderState is a self-consistent snapshot of everything a renderer needs.
type RenderState struct {
	// Items is a copy of the rendered item views.
	Items []string
	// Start and End bound the half-open visible window over Items.
	Start, End int
	// Highlighted is the highlighted index, or -1.
	Highlighted int
	// Open reports whether the dropdown is shown.
	Open bool
}

// RenderState captures items, window, highlight and the open flag under one
// lock. Renderers must read through this rather than the individual
// accessors: a completion landing between separate locked calls could hand
// back a window computed against a different item set.
func (c *Controller[S]) RenderState() RenderState {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]string, len(c.items))
	copy(items, c.items)
	start, end := c.view.Window(len(c.items))
	return RenderState{
		Items:       items,
		Start:       start,
		End:         end,
		Highlighted: c.highlighted,
		Open:        c.opened,
	}
}

// UpdateField runs fn while holding the controller's lock. Hosts mutate the
// bound field through this so the write is ordered against timer and
// completion goroutines reading Field concurrently; fn must not call back
// into the controller.
func (c *Controller[S]) UpdateField(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn()
}
