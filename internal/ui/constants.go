// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// PanelTitleHeight is the height of the title row inside the preview panel
	PanelTitleHeight = 1

	// DefaultWrapWidth is the default width for text wrapping when the preview width is unknown
	DefaultWrapWidth = 80

	// NudgeStep is how many columns ctrl+left/ctrl+right move the divider
	NudgeStep = 2
)

// Preview scrolling
const (
	// PreviewWheelDelta is the number of lines one mouse wheel tick scrolls
	PreviewWheelDelta = 3
)
