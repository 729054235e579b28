package typeahead

// openList shows the dropdown. Opening requires a non-empty suggestion set;
// reopening an already open list does not re-fire the callback.
func (c *Controller[S]) openList() {
	if c.opened || len(c.suggestions) == 0 {
		return
	}
	c.opened = true
	if c.cfg.OnOpen != nil {
		c.cfg.OnOpen()
	}
}

// closeList hides the dropdown. Legal from any state.
func (c *Controller[S]) closeList() {
	if !c.opened {
		return
	}
	c.opened = false
	if c.cfg.OnClose != nil {
		c.cfg.OnClose()
	}
}

// highlightNext advances the highlight downward. The wrap point is "no
// highlight": stepping past the last suggestion restores the user's own
// text before wrapping around on the following keystroke.
func (c *Controller[S]) highlightNext() {
	if len(c.suggestions) == 0 {
		return
	}
	c.openList()
	next := none
	switch {
	case c.highlighted == none:
		next = 0
	case c.highlighted == len(c.suggestions)-1:
		next = none
	default:
		next = c.highlighted + 1
	}
	c.highlightIndex(next)
	if next != none {
		c.view.EnsureVisible(next)
	}
}

// highlightPrev advances the highlight upward, mirroring highlightNext.
func (c *Controller[S]) highlightPrev() {
	if len(c.suggestions) == 0 {
		return
	}
	c.openList()
	prev := none
	switch {
	case c.highlighted == none:
		prev = len(c.suggestions) - 1
	case c.highlighted == 0:
		prev = none
	default:
		prev = c.highlighted - 1
	}
	c.highlightIndex(prev)
	if prev != none {
		c.view.EnsureVisible(prev)
	}
}

// highlightIndex moves the highlight to i. Any existing highlight is removed
// first, which restores the field text, so the snapshot taken here is always
// of the user's own typed text rather than a previous preview.
func (c *Controller[S]) highlightIndex(i int) {
	c.removeHighlight()
	if i == none || i < 0 || i >= len(c.suggestions) {
		return
	}
	term := c.cfg.Field.Value()
	saved := term
	c.saved = &saved
	c.cfg.Field.SetValue(c.cfg.ValueOnHighlight(c.suggestions[i], term))
	c.highlighted = i
	if c.cfg.OnHighlight != nil {
		c.cfg.OnHighlight()
	}
}

// removeHighlight clears the highlight and, when a pending-edit snapshot
// exists, restores the field to exactly the text the user had typed.
func (c *Controller[S]) removeHighlight() {
	c.highlighted = none
	if c.saved != nil {
		c.cfg.Field.SetValue(*c.saved)
		c.saved = nil
	}
}

// selectIndex commits suggestion i into the field and fully resets the
// controller: suggestion set, items, indices and the open flag all clear.
// An index with no matching suggestion is silently ignored.
func (c *Controller[S]) selectIndex(i int) {
	if i < 0 || i >= len(c.suggestions) {
		return
	}
	c.removeHighlight()
	c.selected = i
	c.view.Reset()
	s := c.suggestions[i]
	c.cfg.Field.SetValue(c.cfg.ValueOnSelect(s, c.cfg.Field.Value()))
	if c.cfg.OnSelect != nil {
		c.cfg.OnSelect()
	}
	c.suggestions = nil
	c.items = nil
	c.selected = none
	c.closeList()
}

// selectHighlighted commits the highlighted suggestion, if any.
func (c *Controller[S]) selectHighlighted() {
	if c.highlighted == none {
		return
	}
	c.selectIndex(c.highlighted)
}
