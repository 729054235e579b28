package typeahead

// Event router. Raw UI events map deterministically onto state machine
// operations. Key events arrive as bubbletea-style key names ("up", "down",
// "enter", "esc", single runes, ...). Terminals deliver one event per key
// press, so callers invoke KeyDown first and, when it reports the key as
// unconsumed, apply the key to the text field and then invoke KeyUp. That
// ordering matches the field mutating between the two phases.

// KeyDown handles navigation and commit keys. It returns true when the key
// was consumed and must not reach the text field.
func (c *Controller[S]) KeyDown(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return false
	}
	switch name {
	case "up":
		c.highlightPrev()
		return true
	case "down":
		c.highlightNext()
		return true
	case "enter":
		if c.highlighted != none {
			c.selectHighlighted()
		} else if c.cfg.OnSubmit != nil {
			c.cfg.OnSubmit()
		}
		return true
	}
	return false
}

// KeyUp runs after the field has absorbed a key. Escape dismisses the
// highlight and the list; any other key except shift, tab and the arrow
// keys queues a fetch for the new term. Enter joins the exclusion list: in
// a terminal the commit key reaches KeyUp too, and a just-committed value
// must not immediately requery.
func (c *Controller[S]) KeyUp(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	switch name {
	case "esc":
		c.removeHighlight()
		c.closeList()
	case "up", "down", "left", "right", "tab", "shift+tab",
		"shift+up", "shift+down", "shift+left", "shift+right", "enter":
		// navigation keys never change the term
	default:
		c.queueFetch()
	}
}

// Focus handles the field gaining input focus: the very first focus kicks
// off a fetch, later ones just reopen the list.
func (c *Controller[S]) Focus() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	if !c.fetchedOnce {
		c.queueFetch()
		return
	}
	c.openList()
}

// Blur handles the field losing focus.
func (c *Controller[S]) Blur() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	c.removeHighlight()
	c.closeList()
}

// MouseDownItem selects the item under the cursor. Callers filter for the
// primary button.
func (c *Controller[S]) MouseDownItem(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	c.selectIndex(i)
}

// MouseMoveItem highlights the item under the cursor.
func (c *Controller[S]) MouseMoveItem(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	if i < 0 || i >= len(c.suggestions) {
		return
	}
	c.highlightIndex(i)
}

// MouseLeaveList clears the highlight when the cursor leaves the dropdown.
func (c *Controller[S]) MouseLeaveList() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	c.removeHighlight()
}
