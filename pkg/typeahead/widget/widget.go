// Package widget binds a typeahead controller to a bubbletea program: a
// bubbles textinput as the field, key and mouse messages routed into the
// controller, and a lipgloss-styled dropdown rendered under the input.
package widget

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bastiangx/typeahead/pkg/typeahead"
)

// RedrawMsg forces a repaint after an asynchronous controller transition
// (debounce fire, late source completion). Hosts wire the controller's
// OnOpen/OnClose/OnHighlight callbacks to program.Send(RedrawMsg{}) so the
// dropdown appears without waiting for the next input event.
type RedrawMsg struct{}

// SubmitMsg is emitted when enter is pressed with nothing highlighted.
type SubmitMsg struct {
	Value string
}

// Model is a bubbletea component owning one input/dropdown pair.
type Model[S any] struct {
	input     textinput.Model
	ctrl      *typeahead.Controller[S]
	styles    Styles
	submitted bool
}

// inputField adapts the bubbles textinput to the controller's Field
// interface. It holds a pointer into the model, so Model must not be copied.
type inputField struct {
	m *textinput.Model
}

func (f inputField) Value() string     { return f.m.Value() }
func (f inputField) SetValue(v string) { f.m.SetValue(v) }
func (f inputField) Focused() bool     { return f.m.Focused() }

// New builds a widget around cfg. The Field option is filled in by the
// widget itself; everything else in cfg keeps the controller's semantics.
func New[S any](cfg typeahead.Config[S]) (*Model[S], error) {
	m := &Model[S]{
		styles: DefaultStyles(),
	}
	m.input = textinput.New()
	m.input.Prompt = "> "
	cfg.Field = inputField{m: &m.input}

	// OnSubmit fires synchronously inside KeyDown, on the Update goroutine.
	submit := cfg.OnSubmit
	cfg.OnSubmit = func() {
		m.submitted = true
		if submit != nil {
			submit()
		}
	}

	ctrl, err := typeahead.New(cfg)
	if err != nil {
		return nil, err
	}
	m.ctrl = ctrl
	return m, nil
}

// SetStyles overrides the default dropdown styles.
func (m *Model[S]) SetStyles(s Styles) {
	m.styles = s
}

// Controller exposes the underlying state machine, mainly so hosts can call
// Destroy when tearing the widget down.
func (m *Model[S]) Controller() *typeahead.Controller[S] {
	return m.ctrl
}

// Value returns the current field text.
func (m *Model[S]) Value() string {
	return m.input.Value()
}

func (m *Model[S]) Init() tea.Cmd {
	m.ctrl.Init()
	m.input.Focus()
	m.ctrl.Focus()
	return textinput.Blink
}

func (m *Model[S]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RedrawMsg:
		return m, nil

	case tea.KeyMsg:
		name := msg.String()
		if m.ctrl.KeyDown(name) {
			if name == "enter" {
				return m, m.drainSubmit()
			}
			return m, nil
		}
		// The textinput mutates under the controller's lock: the debounce
		// timer and completion goroutines read Field.Value holding that
		// lock, so an unguarded write here would race with an in-flight
		// fetch for the previous keystroke.
		var cmd tea.Cmd
		m.ctrl.UpdateField(func() {
			m.input, cmd = m.input.Update(msg)
		})
		m.ctrl.KeyUp(name)
		return m, cmd

	case tea.MouseMsg:
		m.routeMouse(msg)
		return m, nil

	case tea.FocusMsg:
		var cmd tea.Cmd
		m.ctrl.UpdateField(func() {
			cmd = m.input.Focus()
		})
		m.ctrl.Focus()
		return m, cmd

	case tea.BlurMsg:
		m.ctrl.UpdateField(func() {
			m.input.Blur()
		})
		m.ctrl.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.ctrl.UpdateField(func() {
		m.input, cmd = m.input.Update(msg)
	})
	return m, cmd
}

// routeMouse hit-tests dropdown rows. The input occupies row 0 and visible
// items start on row 1, so a pointer at Y maps to the item at
// window-start + Y - 1.
func (m *Model[S]) routeMouse(msg tea.MouseMsg) {
	rs := m.ctrl.RenderState()
	if !rs.Open {
		return
	}
	idx := rs.Start + msg.Y - 1
	onItem := msg.Y >= 1 && idx < rs.End

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && onItem {
			m.ctrl.MouseDownItem(idx)
		}
	case tea.MouseActionMotion:
		if onItem {
			m.ctrl.MouseMoveItem(idx)
		} else {
			m.ctrl.MouseLeaveList()
		}
	}
}

// drainSubmit converts a pending submit into a SubmitMsg command.
func (m *Model[S]) drainSubmit() tea.Cmd {
	if !m.submitted {
		return nil
	}
	m.submitted = false
	v := m.input.Value()
	return func() tea.Msg {
		return SubmitMsg{Value: v}
	}
}
