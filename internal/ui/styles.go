package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, derived from the active theme by regenerateStyles
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorWarning     color.Color
	ColorError       color.Color
	ColorInfo        color.Color
)

// Footer styles
var (
	FooterStyle        lipgloss.Style
	FooterKeyStyle     lipgloss.Style
	FooterDescStyle    lipgloss.Style
	FooterWarningStyle lipgloss.Style
)

// Panel styles
var (
	PanelStyle         lipgloss.Style
	PanelFocusedStyle  lipgloss.Style
	PanelTitleStyle    lipgloss.Style
	DividerStyle       lipgloss.Style
	DividerActiveStyle lipgloss.Style
)

// Preview markup styles
var (
	MarkdownH1Style         lipgloss.Style
	MarkdownH2Style         lipgloss.Style
	MarkdownH3Style         lipgloss.Style
	MarkdownH4Style         lipgloss.Style
	MarkdownBoldStyle       lipgloss.Style
	MarkdownItalicStyle     lipgloss.Style
	MarkdownInlineCodeStyle lipgloss.Style
	MarkdownLinkStyle       lipgloss.Style
	MarkdownListBulletStyle lipgloss.Style
	MarkdownQuoteStyle      lipgloss.Style
	MarkdownRuleStyle       lipgloss.Style

	AdmonitionInfoStyle      lipgloss.Style
	AdmonitionWarningStyle   lipgloss.Style
	AdmonitionImportantStyle lipgloss.Style
)

func init() {
	regenerateStyles()
}
