package app

import (
	tea "charm.land/bubbletea/v2"
)

// handleMouse routes mouse events. Clicks, motion and releases go to the
// split's divider; the wheel scrolls the preview when the pointer is over it.
func (m *Model) handleMouse(msg tea.Msg) tea.Cmd {
	top := m.headerHeight()

	switch mouseMsg := msg.(type) {
	case tea.MouseClickMsg:
		mouseMsg.Y -= top
		m.split.HandleMouse(mouseMsg)

	case tea.MouseMotionMsg:
		mouseMsg.Y -= top
		m.split.HandleMouse(mouseMsg)

	case tea.MouseReleaseMsg:
		mouseMsg.Y -= top
		m.split.HandleMouse(mouseMsg)

	case tea.MouseWheelMsg:
		if m.editor == nil || !m.overPreview(mouseMsg.X, mouseMsg.Y-top) {
			return nil
		}
		return m.preview.Update(mouseMsg)
	}
	return nil
}

// overPreview reports whether a point in split coordinates is over the right pane.
func (m *Model) overPreview(x, y int) bool {
	return x > m.split.LeftWidth() && y >= 0 && y < m.split.Height()
}
