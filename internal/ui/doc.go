// Package ui provides the user interface components for the inkwell TUI.
//
// # Overview
//
// The ui package implements the visual components of inkwell using the Bubble Tea
// framework and Lipgloss styling library. Components are plain structs owned by
// the app model; they render strings and never touch the terminal directly.
//
// # Layout System
//
// The layout is organized as follows:
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line, optional)                           │
//	├─────────────────────────┬───────────────────────────┤
//	│                         │                           │
//	│   Editor                ┃   Preview                 │
//	│   (left pane)           ┃   (right pane)            │
//	│                         │                           │
//	├─────────────────────────┴───────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// The divider between the panes belongs to layout.Split and can be dragged
// with the mouse or nudged with ctrl+left/ctrl+right.
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
// All size calculations should go through ViewContext to ensure consistency.
//
// Header: Displays the application title, the document title and where the
// document came from. Uses a gradient background with the primary color.
//
// Footer: Shows keyboard shortcuts, line and character counts, and the first
// compile warning.
//
// Editor: A bordered textarea holding the document source. Its size is only
// ever changed through SetSize.
//
// Preview: A scrollable viewport showing the compiled document with inline
// formatting and syntax-highlighted listings.
//
// # Styles
//
// All styles are regenerated from the active Theme by regenerateStyles. Each
// theme also names the chroma style used for listings.
package ui
