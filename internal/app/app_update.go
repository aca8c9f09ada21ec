package app

import (
	tea "charm.land/bubbletea/v2"
)

// Update handles messages. This is the core Bubble Tea update function that routes
// all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case SessionLoadedMsg:
		return m, m.handleSessionLoaded(msg)

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.footer.SetStatus("")
		}
		return m, nil

	case tea.KeyPressMsg:
		if cmd, handled := m.handleKeyPress(msg); handled {
			return m, cmd
		}

	case tea.MouseClickMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg, tea.MouseWheelMsg:
		return m, m.handleMouse(msg)
	}

	// Everything else (typing, paste, cursor blink) belongs to the editor
	if m.editor == nil {
		return m, nil
	}
	return m, m.editor.Update(msg)
}
