package ui

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/inkwell/internal/layout"
)

// EditorConfig holds everything an editor pane needs at construction time.
type EditorConfig struct {
	// Size is the outer size of the pane, border included.
	Size layout.Size
	// InitialBody is the text the editor starts with.
	InitialBody string
	// OnBodyChange is called with the full text after every edit.
	OnBodyChange func(string)
}

// Editor is the left pane: a bordered textarea holding the document source.
type Editor struct {
	size     layout.Size
	input    textarea.Model
	onChange func(string)
	focused  bool
}

// NewEditor creates an editor pane showing cfg.InitialBody.
func NewEditor(cfg EditorConfig) *Editor {
	ti := textarea.New()
	ti.Placeholder = "Start writing..."
	ti.CharLimit = 0
	ti.MaxHeight = 0
	ti.MaxWidth = 0
	ti.ShowLineNumbers = false
	ti.Prompt = ""
	ti.SetValue(cfg.InitialBody)
	ti.MoveToBegin()

	e := &Editor{
		input:    ti,
		onChange: cfg.OnBodyChange,
	}
	e.SetSize(cfg.Size)
	return e
}

// SetSize replaces the pane size. The text is left untouched.
func (e *Editor) SetSize(size layout.Size) {
	e.size = size

	innerWidth := InnerWidth(size.Width)
	innerHeight := InnerHeight(size.Height)
	if innerWidth < 1 || innerHeight < 1 {
		return
	}
	e.input.SetWidth(innerWidth)
	e.input.SetHeight(innerHeight)
}

// Size returns the pane size last set.
func (e *Editor) Size() layout.Size {
	return e.size
}

// Focus gives the textarea keyboard focus.
func (e *Editor) Focus() tea.Cmd {
	e.focused = true
	return e.input.Focus()
}

// Blur removes keyboard focus.
func (e *Editor) Blur() {
	e.focused = false
	e.input.Blur()
}

// Value returns the current text.
func (e *Editor) Value() string {
	return e.input.Value()
}

// Update forwards msg to the textarea and reports the new text if it changed.
func (e *Editor) Update(msg tea.Msg) tea.Cmd {
	before := e.input.Value()

	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)

	if after := e.input.Value(); after != before && e.onChange != nil {
		e.onChange(after)
	}
	return cmd
}

// View renders the editor pane, or nothing when there is no room for it.
func (e *Editor) View() string {
	if e.size.Width <= BorderSize || e.size.Height <= BorderSize {
		return ""
	}
	panelStyle := PanelStyle
	if e.focused {
		panelStyle = PanelFocusedStyle
	}
	return panelStyle.Width(e.size.Width).Height(e.size.Height).Render(e.input.View())
}
