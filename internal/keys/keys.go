// Package keys provides string constants for Bubble Tea v2 key press events.
//
// These constants are derived from tea.KeyPressMsg{Code: tea.KeyXxx}.String()
// and are guaranteed to match the actual runtime values. Using these constants
// instead of hardcoded strings prevents typo bugs (e.g., "escape" vs "esc").
package keys

import tea "charm.land/bubbletea/v2"

// Navigation keys
var (
	PgUp   = tea.KeyPressMsg{Code: tea.KeyPgUp}.String()   // "pgup"
	PgDown = tea.KeyPressMsg{Code: tea.KeyPgDown}.String() // "pgdown"
)

// Ctrl combinations
var (
	CtrlC     = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String()          // "ctrl+c"
	CtrlQ     = (tea.KeyPressMsg{Code: 'q', Mod: tea.ModCtrl}).String()          // "ctrl+q"
	CtrlY     = (tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}).String()          // "ctrl+y"
	CtrlO     = (tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl}).String()          // "ctrl+o"
	CtrlLeft  = (tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModCtrl}).String()  // "ctrl+left"
	CtrlRight = (tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModCtrl}).String() // "ctrl+right"
)
