package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/inkwell/internal/document"
	"github.com/zhubert/inkwell/internal/loader"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string. Until the session is
// loaded, and forever if loading failed, this is the empty placeholder.
func (m *Model) RenderToString() string {
	return loader.Match(m.future,
		func() string { return "" },
		func(*document.Session) string { return m.renderEditView() },
		func(error) string { return "" },
	)
}

// renderEditView renders the header, the editor/preview split and the footer.
func (m *Model) renderEditView() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var rows []string
	if m.showHeader {
		rows = append(rows, m.header.View())
	}
	if m.split.Height() > 0 {
		rows = append(rows, m.split.View(m.editor.View(), m.preview.View()))
	}
	rows = append(rows, m.footer.View())

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
