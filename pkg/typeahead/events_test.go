package typeahead

import (
	"testing"
	"time"
)

func TestKeyDownConsumesOnlyNavigationKeys(t *testing.T) {
	field := &fakeField{value: "ca"}
	c := openController(t, field, "cat")

	tests := []struct {
		key  string
		want bool
	}{
		{"up", true},
		{"down", true},
		{"enter", true},
		{"a", false},
		{"backspace", false},
		{"tab", false},
		{"left", false},
	}
	for _, tt := range tests {
		if got := c.KeyDown(tt.key); got != tt.want {
			t.Errorf("KeyDown(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestKeyUpNavigationKeysNeverFetch(t *testing.T) {
	field := &fakeField{value: "ca", focused: true}
	src := &countingSource{results: []string{"cat"}}
	c, err := New(testConfig(field, src.get))
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	c.Init()
	for _, key := range []string{"up", "down", "left", "right", "tab", "shift+tab", "enter"} {
		c.KeyUp(key)
	}
	time.Sleep(30 * time.Millisecond)
	if n := len(src.calls()); n != 0 {
		t.Fatalf("navigation keys triggered %d fetches, want 0", n)
	}

	c.KeyUp("a")
	waitFor(t, func() bool { return len(src.calls()) == 1 })
}

func TestMouseMoveHighlightsAndLeaveClears(t *testing.T) {
	field := &fakeField{value: "ca"}
	c := openController(t, field, "cat", "car")

	c.MouseMoveItem(1)
	if got := c.Highlighted(); got != 1 {
		t.Fatalf("highlighted = %d, want 1", got)
	}
	if field.Value() != "car|preview" {
		t.Fatalf("field = %q, want hover preview", field.Value())
	}

	c.MouseLeaveList()
	if c.Highlighted() != none {
		t.Fatalf("highlight survived mouse leave")
	}
	if field.Value() != "ca" {
		t.Fatalf("field = %q, want restored text", field.Value())
	}
}

func TestMouseMoveOutOfRangeIsIgnored(t *testing.T) {
	field := &fakeField{value: "ca"}
	c := openController(t, field, "cat")

	c.MouseMoveItem(3)
	if c.Highlighted() != none {
		t.Fatalf("out-of-range hover set a highlight")
	}
	if field.Value() != "ca" {
		t.Fatalf("out-of-range hover mutated the field")
	}
}

func TestBlurRemovesHighlightAndCloses(t *testing.T) {
	field := &fakeField{value: "ca"}
	c := openController(t, field, "cat", "car")

	c.KeyDown("down")
	c.Blur()
	if c.Open() {
		t.Fatalf("list open after blur")
	}
	if c.Highlighted() != none {
		t.Fatalf("highlight survived blur")
	}
	if field.Value() != "ca" {
		t.Fatalf("field = %q, want restored text after blur", field.Value())
	}
}

func TestEventsAreNoOpsBeforeInit(t *testing.T) {
	field := &fakeField{value: "ca", focused: true}
	src := &countingSource{results: []string{"cat"}}
	c, err := New(testConfig(field, src.get))
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	c.KeyUp("a")
	c.Focus()
	c.KeyDown("down")
	c.MouseDownItem(0)
	time.Sleep(30 * time.Millisecond)
	if len(src.calls()) != 0 || c.Open() {
		t.Fatalf("events had effect before Init")
	}
}
