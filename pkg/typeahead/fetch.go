package typeahead

import (
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// queueFetch restarts the debounce timer for the current term. Called with
// the controller lock held. A term below MinChars clears everything and
// skips the fetch entirely.
func (c *Controller[S]) queueFetch() {
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	term := c.cfg.Field.Value()
	if utf8.RuneCountInString(term) < c.cfg.MinChars {
		c.suggestions = nil
		c.items = nil
		c.closeList()
		return
	}
	g := c.gen
	c.timer = time.AfterFunc(c.cfg.Delay, func() {
		c.fetch(g)
	})
}

// fetch fires when the debounce timer elapses. The generation check drops
// timers superseded by a later keystroke or by Destroy, including ones that
// already fired and were waiting on the lock.
func (c *Controller[S]) fetch(g uint64) {
	c.mu.Lock()
	if !c.initialized || g != c.gen {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.suggestions = nil
	c.fetchedOnce = true
	term := c.cfg.Field.Value()
	c.mu.Unlock()

	log.Debugf("typeahead: querying source for term %q", term)

	// The source runs outside the lock so a synchronous deliver call does
	// not deadlock. Completion may also arrive much later from another
	// goroutine; complete re-validates before applying anything.
	c.cfg.GetSuggestions(term, func(results []S) {
		c.complete(results)
	})
}

// complete applies a source completion. Staleness is judged the same way on
// every path: a completion whose term has since dropped below MinChars is
// discarded silently, and a completion landing after Destroy is a no-op.
func (c *Controller[S]) complete(results []S) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	c.view.Reset()
	if utf8.RuneCountInString(c.cfg.Field.Value()) < c.cfg.MinChars {
		log.Debug("typeahead: dropping stale completion, term below minimum")
		return
	}
	if c.cfg.MaxSuggestions > 0 && len(results) > c.cfg.MaxSuggestions {
		results = results[:c.cfg.MaxSuggestions]
	}
	c.suggestions = results
	if len(results) == 0 {
		c.items = nil
		c.closeList()
		return
	}
	c.renderItems()
	if c.cfg.Field.Focused() {
		c.openList()
	}
}

// renderItems regenerates the item view list from scratch; there is no
// incremental diffing against the previous set.
func (c *Controller[S]) renderItems() {
	term := c.cfg.Field.Value()
	items := make([]string, len(c.suggestions))
	for i, s := range c.suggestions {
		items[i] = c.cfg.RenderItem(s, term)
	}
	c.items = items
}
