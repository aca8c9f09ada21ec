package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/inkwell/internal/keys"
	"github.com/zhubert/inkwell/internal/ui"
)

// statusDuration is how long a footer status stays visible
const statusDuration = 2 * time.Second

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for all shortcuts in the application.
type Shortcut struct {
	Keys            []string                                   // Key bindings (e.g., "ctrl+q")
	DisplayKey      string                                     // Display name in the footer; empty hides it
	Description     string                                     // Human-readable description
	RequiresSession bool                                       // Only active once the document is loaded
	Handler         func(m *Model, msg tea.KeyPressMsg) tea.Cmd // Action to perform
}

// ShortcutRegistry is the central registry of all keyboard shortcuts.
// Anything not matched here is typed into the editor.
var ShortcutRegistry = []Shortcut{
	{
		Keys:        []string{keys.CtrlLeft, keys.CtrlRight},
		DisplayKey:  "ctrl+←/→",
		Description: "resize",
		Handler:     shortcutNudge,
	},
	{
		Keys:            []string{keys.PgUp, keys.PgDown},
		DisplayKey:      "pgup/dn",
		Description:     "scroll preview",
		RequiresSession: true,
		Handler:         shortcutScrollPreview,
	},
	{
		Keys:            []string{keys.CtrlY},
		DisplayKey:      "ctrl+y",
		Description:     "copy source",
		RequiresSession: true,
		Handler:         shortcutCopySource,
	},
	{
		Keys:            []string{keys.CtrlO},
		DisplayKey:      "ctrl+o",
		Description:     "copy text",
		RequiresSession: true,
		Handler:         shortcutCopyText,
	},
	{
		Keys:        []string{keys.CtrlQ, keys.CtrlC},
		DisplayKey:  "ctrl+q",
		Description: "quit",
		Handler:     shortcutQuit,
	},
}

// footerBindings derives the footer hints from the registry
func footerBindings() []ui.KeyBinding {
	var bindings []ui.KeyBinding
	for _, s := range ShortcutRegistry {
		if s.DisplayKey != "" {
			bindings = append(bindings, ui.KeyBinding{Key: s.DisplayKey, Desc: s.Description})
		}
	}
	return bindings
}

// handleKeyPress runs the shortcut bound to msg, if any.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	key := msg.String()
	for _, s := range ShortcutRegistry {
		for _, k := range s.Keys {
			if k != key {
				continue
			}
			if s.RequiresSession && m.session == nil {
				return nil, true
			}
			return s.Handler(m, msg), true
		}
	}
	return nil, false
}

func shortcutNudge(m *Model, msg tea.KeyPressMsg) tea.Cmd {
	delta := ui.NudgeStep
	if msg.String() == keys.CtrlLeft {
		delta = -delta
	}
	m.split.Nudge(delta)
	return nil
}

func shortcutScrollPreview(m *Model, msg tea.KeyPressMsg) tea.Cmd {
	return m.preview.Update(msg)
}

func shortcutCopySource(m *Model, _ tea.KeyPressMsg) tea.Cmd {
	return m.copy(m.session.Body(), "source copied")
}

func shortcutCopyText(m *Model, _ tea.KeyPressMsg) tea.Cmd {
	return m.copy(m.session.Compiled().PlainText(), "text copied")
}

func shortcutQuit(m *Model, _ tea.KeyPressMsg) tea.Cmd {
	m.persistLayout()
	m.Close()
	return tea.Quit
}

// clearStatusMsg clears the footer status set by the copy with the same seq
type clearStatusMsg struct {
	seq int
}

// copy writes text to the clipboard and reports the outcome in the footer.
func (m *Model) copy(text, success string) tea.Cmd {
	status := success
	if err := m.copyText(text); err != nil {
		m.log.Warn("Copy failed", "error", err)
		status = "copy failed"
	}
	return m.setStatus(status)
}

func (m *Model) setStatus(status string) tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	m.footer.SetStatus(status)
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
