package typeahead

// viewport tracks which slice of the item list the dropdown shows. Scroll
// state lives here so the controller can reset it on every fetch and keep
// the highlighted row visible during keyboard navigation.
type viewport struct {
	offset  int
	visible int
}

// Reset scrolls back to the top of the list.
func (v *viewport) Reset() {
	v.offset = 0
}

// EnsureVisible adjusts the offset so row i sits fully inside the window:
// scrolls up when the row is above the window, down when it is below.
func (v *viewport) EnsureVisible(i int) {
	if v.visible <= 0 || i < 0 {
		return
	}
	if i < v.offset {
		v.offset = i
	}
	if i >= v.offset+v.visible {
		v.offset = i - v.visible + 1
	}
}

// Window clamps the current offset against total and returns the half-open
// [start, end) range of visible rows.
func (v *viewport) Window(total int) (int, int) {
	if v.visible <= 0 || total <= v.visible {
		return 0, total
	}
	start := v.offset
	if start > total-v.visible {
		start = total - v.visible
	}
	if start < 0 {
		start = 0
	}
	return start, start + v.visible
}
