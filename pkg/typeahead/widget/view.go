package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Styles are the cosmetic knobs for the dropdown, the terminal counterpart
// of the DOM widget's class-name sets.
type Styles struct {
	// List frames the whole dropdown block.
	List lipgloss.Style
	// Item renders a non-highlighted row.
	Item lipgloss.Style
	// Highlight renders the highlighted row.
	Highlight lipgloss.Style
}

// DefaultStyles returns the stock palette.
func DefaultStyles() Styles {
	return Styles{
		List: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#4B4265")),
		Item: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF")).
			Padding(0, 1),
		Highlight: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EBCB8B")).
			Background(lipgloss.Color("#2F2A3D")).
			Padding(0, 1),
	}
}

func (m *Model[S]) View() string {
	var b strings.Builder
	b.WriteString(m.input.View())

	// One snapshot per frame; reading items, window and highlight as
	// separate calls would let an async completion tear them apart.
	rs := m.ctrl.RenderState()
	if !rs.Open {
		return b.String()
	}

	width := 0
	for _, item := range rs.Items {
		if w := runewidth.StringWidth(item); w > width {
			width = w
		}
	}

	rows := make([]string, 0, rs.End-rs.Start)
	for i := rs.Start; i < rs.End; i++ {
		row := runewidth.FillRight(rs.Items[i], width)
		if i == rs.Highlighted {
			row = m.styles.Highlight.Render(row)
		} else {
			row = m.styles.Item.Render(row)
		}
		rows = append(rows, row)
	}

	b.WriteString("\n")
	b.WriteString(m.styles.List.Render(strings.Join(rows, "\n")))
	return b.String()
}
