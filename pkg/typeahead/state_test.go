package typeahead

import (
	"testing"
	"time"
)

// openController builds an initialized controller whose list is already
// populated and open for the given words.
func openController(t *testing.T, field *fakeField, words ...string) *Controller[string] {
	t.Helper()
	field.focused = true
	cfg := testConfig(field, echoSource(words...))
	cfg.ValueOnHighlight = func(s, term string) string { return s + "|preview" }
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	c.Init()
	c.KeyUp("x")
	waitFor(t, func() bool { return c.Open() })
	return c
}

func TestHighlightNextWrapsThroughNone(t *testing.T) {
	field := &fakeField{value: "ca"}
	c := openController(t, field, "cat", "car", "cap")

	want := []int{0, 1, 2, none, 0}
	for step, idx := range want {
		c.KeyDown("down")
		if got := c.Highlighted(); got != idx {
			t.Fatalf("step %d: highlighted = %d, want %d", step, got, idx)
		}
	}
}

func TestHighlightPrevWrapsThroughNone(t *testing.T) {
	field := &fakeField{value: "ca"}
	c := openController(t, field, "cat", "car", "cap")

	// Up from no highlight lands on the last suggestion.
	c.KeyDown("up")
	if got := c.Highlighted(); got != 2 {
		t.Fatalf("highlighted = %d, want 2", got)
	}
	c.KeyDown("up")
	c.KeyDown("up")
	if got := c.Highlighted(); got != 0 {
		t.Fatalf("highlighted = %d, want 0", got)
	}
	// Up at index 0 clears back to the user's own text.
	c.KeyDown("up")
	if got := c.Highlighted(); got != none {
		t.Fatalf("highlighted = %d, want none", got)
	}
	if field.Value() != "ca" {
		t.Fatalf("field = %q, want restored user text %q", field.Value(), "ca")
	}
	// And up again wraps to the last suggestion.
	c.KeyDown("up")
	if got := c.Highlighted(); got != 2 {
		t.Fatalf("highlighted = %d, want 2 after wrap", got)
	}
}

func TestHighlightPreviewsAndRestoresExactText(t *testing.T) {
	field := &fakeField{value: "ca"}
	c := openController(t, field, "cat", "car")

	c.KeyDown("down")
	if field.Value() != "cat|preview" {
		t.Fatalf("field = %q, want highlight preview", field.Value())
	}
	c.KeyDown("down")
	if field.Value() != "car|preview" {
		t.Fatalf("field = %q, want second preview", field.Value())
	}
	// Stepping past the end restores the snapshot byte for byte.
	c.KeyDown("down")
	if field.Value() != "ca" {
		t.Fatalf("field = %q, want %q restored", field.Value(), "ca")
	}
}

func TestEscapeRestoresUserTextAndCloses(t *testing.T) {
	field := &fakeField{value: "ca"}
	c := openController(t, field, "cat", "car")

	c.KeyDown("down")
	c.KeyUp("esc")
	if c.Open() {
		t.Fatalf("list still open after escape")
	}
	if c.Highlighted() != none {
		t.Fatalf("highlight survived escape")
	}
	if field.Value() != "ca" {
		t.Fatalf("field = %q, want %q", field.Value(), "ca")
	}
}

func TestSelectCommitsAndFullyResets(t *testing.T) {
	field := &fakeField{value: "ca"}
	selects := 0
	cfg := testConfig(field, echoSource("cat", "car"))
	cfg.OnSelect = func() { selects++ }
	cfg.ValueOnSelect = func(s, term string) string { return s + " " }
	field.focused = true
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	c.Init()
	c.KeyUp("a")
	waitFor(t, func() bool { return c.Open() })

	c.MouseDownItem(1)
	if field.Value() != "car " {
		t.Fatalf("field = %q, want committed value %q", field.Value(), "car ")
	}
	if selects != 1 {
		t.Fatalf("select callback fired %d times, want 1", selects)
	}
	if c.Open() {
		t.Fatalf("list still open after select")
	}
	if len(c.Items()) != 0 || len(c.Suggestions()) != 0 {
		t.Fatalf("suggestion state not cleared after select")
	}
}

func TestSelectInvalidIndexIsIgnored(t *testing.T) {
	field := &fakeField{value: "ca"}
	c := openController(t, field, "cat", "car")

	c.MouseDownItem(5)
	c.MouseDownItem(-1)
	if !c.Open() {
		t.Fatalf("valid state disturbed by out-of-range select")
	}
	if field.Value() != "ca" {
		t.Fatalf("field mutated by out-of-range select")
	}
}

func TestEnterWithoutHighlightFiresSubmit(t *testing.T) {
	field := &fakeField{value: "ca"}
	submits := 0
	field.focused = true
	cfg := testConfig(field, echoSource("cat"))
	cfg.OnSubmit = func() { submits++ }
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	c.Init()
	if !c.KeyDown("enter") {
		t.Fatalf("enter not consumed")
	}
	if submits != 1 {
		t.Fatalf("submit callback fired %d times, want 1", submits)
	}
}

// Scenario from the behavioral contract: minChars=2, delay=100ms, type "ca",
// navigate down, commit with enter.
func TestTypeNavigateSelectScenario(t *testing.T) {
	field := &fakeField{value: "ca", focused: true}
	src := &countingSource{results: []string{"cat", "car"}}
	cfg := Config[string]{
		Field:          field,
		GetSuggestions: src.get,
		RenderItem:     func(s, term string) string { return s },
		ValueOnSelect: func(s, term string) string {
			return s + " "
		},
		ValueOnHighlight: func(s, term string) string {
			return s
		},
		MinChars: 2,
		Delay:    100 * time.Millisecond,
	}
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	c.Init()
	c.KeyUp("a")
	waitFor(t, func() bool { return c.Open() })
	if calls := src.calls(); len(calls) != 1 || calls[0] != "ca" {
		t.Fatalf("source calls = %v, want exactly [ca]", calls)
	}
	if got := len(c.Items()); got != 2 {
		t.Fatalf("list has %d items, want 2", got)
	}

	c.KeyDown("down")
	if c.Highlighted() != 0 || field.Value() != "cat" {
		t.Fatalf("down: highlighted=%d field=%q, want 0/%q", c.Highlighted(), field.Value(), "cat")
	}

	c.KeyDown("enter")
	if field.Value() != "cat " {
		t.Fatalf("enter: field = %q, want %q", field.Value(), "cat ")
	}
	if c.Open() || len(c.Items()) != 0 {
		t.Fatalf("list not closed and cleared after selection")
	}
}
