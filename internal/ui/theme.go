// Package ui provides theme management for the application.
// Themes define the color palette used throughout the UI, allowing users
// to customize the visual appearance of inkwell.
package ui

import (
	"sort"

	"charm.land/lipgloss/v2"
)

// Theme defines a complete color palette for the application.
// Each theme provides colors for all UI elements, ensuring visual consistency.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (used for focus, highlights, headers)
	Primary string
	// Secondary is the secondary accent color (used for key hints, info)
	Secondary string

	// Background colors
	Bg string // Main background

	// Text colors
	Text      string // Primary text
	TextMuted string // Secondary/muted text

	// Semantic colors
	Warning string // Compile warnings, cautions
	Error   string // Errors, important admonitions
	Info    string // Notes and tips

	// Border colors
	Border      string // Default borders
	BorderFocus string // Focused element borders (defaults to Primary if empty)

	// Markup colors
	MarkdownH1       string // Document title and level-1 sections
	MarkdownH2       string // Level-2 sections
	MarkdownH3       string // Deeper sections
	MarkdownCode     string // Inline code
	MarkdownLink     string // Links
	MarkdownListItem string // List bullets
	MarkdownQuote    string // Quote blocks

	// CodeStyle is the chroma style used for source listings
	CodeStyle string
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeDarkPurple ThemeName = "dark-purple"
	ThemeNord       ThemeName = "nord"
	ThemeDracula    ThemeName = "dracula"
	ThemeGruvbox    ThemeName = "gruvbox"
	ThemeLight      ThemeName = "light"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeDarkPurple

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeDarkPurple: {
		Name:             "Dark Purple",
		Primary:          "#7C3AED",
		Secondary:        "#06B6D4",
		Bg:               "#1F2937",
		Text:             "#F9FAFB",
		TextMuted:        "#9CA3AF",
		Warning:          "#F59E0B",
		Error:            "#EF4444",
		Info:             "#06B6D4",
		Border:           "#374151",
		MarkdownH1:       "#A78BFA",
		MarkdownH2:       "#C4B5FD",
		MarkdownH3:       "#22D3EE",
		MarkdownCode:     "#67E8F9",
		MarkdownLink:     "#67E8F9",
		MarkdownListItem: "#06B6D4",
		MarkdownQuote:    "#C4B5FD",
		CodeStyle:        "monokai",
	},
	ThemeNord: {
		Name:             "Nord",
		Primary:          "#88C0D0",
		Secondary:        "#81A1C1",
		Bg:               "#2E3440",
		Text:             "#ECEFF4",
		TextMuted:        "#D8DEE9",
		Warning:          "#EBCB8B",
		Error:            "#BF616A",
		Info:             "#81A1C1",
		Border:           "#4C566A",
		MarkdownH1:       "#88C0D0",
		MarkdownH2:       "#81A1C1",
		MarkdownH3:       "#5E81AC",
		MarkdownCode:     "#A3BE8C",
		MarkdownLink:     "#88C0D0",
		MarkdownListItem: "#81A1C1",
		MarkdownQuote:    "#B48EAD",
		CodeStyle:        "nord",
	},
	ThemeDracula: {
		Name:             "Dracula",
		Primary:          "#BD93F9",
		Secondary:        "#8BE9FD",
		Bg:               "#282A36",
		Text:             "#F8F8F2",
		TextMuted:        "#BFBFBF",
		Warning:          "#FFB86C",
		Error:            "#FF5555",
		Info:             "#8BE9FD",
		Border:           "#44475A",
		MarkdownH1:       "#FF79C6",
		MarkdownH2:       "#BD93F9",
		MarkdownH3:       "#8BE9FD",
		MarkdownCode:     "#50FA7B",
		MarkdownLink:     "#8BE9FD",
		MarkdownListItem: "#FF79C6",
		MarkdownQuote:    "#F1FA8C",
		CodeStyle:        "dracula",
	},
	ThemeGruvbox: {
		Name:             "Gruvbox",
		Primary:          "#FE8019",
		Secondary:        "#8EC07C",
		Bg:               "#282828",
		Text:             "#EBDBB2",
		TextMuted:        "#BDAE93",
		Warning:          "#FABD2F",
		Error:            "#FB4934",
		Info:             "#83A598",
		Border:           "#504945",
		MarkdownH1:       "#FE8019",
		MarkdownH2:       "#FABD2F",
		MarkdownH3:       "#8EC07C",
		MarkdownCode:     "#B8BB26",
		MarkdownLink:     "#83A598",
		MarkdownListItem: "#FE8019",
		MarkdownQuote:    "#D3869B",
		CodeStyle:        "gruvbox",
	},
	ThemeLight: {
		Name:             "Light",
		Primary:          "#6D28D9",
		Secondary:        "#0E7490",
		Bg:               "#F9FAFB",
		Text:             "#111827",
		TextMuted:        "#4B5563",
		Warning:          "#B45309",
		Error:            "#B91C1C",
		Info:             "#0E7490",
		Border:           "#D1D5DB",
		MarkdownH1:       "#6D28D9",
		MarkdownH2:       "#7C3AED",
		MarkdownH3:       "#0E7490",
		MarkdownCode:     "#047857",
		MarkdownLink:     "#1D4ED8",
		MarkdownListItem: "#6D28D9",
		MarkdownQuote:    "#6B7280",
		CodeStyle:        "github",
	},
}

// ThemeNames returns all theme names in sorted order
func ThemeNames() []ThemeName {
	names := make([]ThemeName, 0, len(BuiltinThemes))
	for name := range BuiltinThemes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// IsThemeName reports whether name is a built-in theme
func IsThemeName(name string) bool {
	_, ok := BuiltinThemes[ThemeName(name)]
	return ok
}

// GetTheme returns the theme for the given name, or the default theme if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

// currentTheme holds the active theme
var currentTheme = BuiltinThemes[DefaultTheme]

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// SetTheme changes the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	currentTheme = GetTheme(name)
	regenerateStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorError = lipgloss.Color(t.Error)
	ColorInfo = lipgloss.Color(t.Info)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	FooterWarningStyle = lipgloss.NewStyle().
		Foreground(ColorWarning)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1)

	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorBorder)

	DividerActiveStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	MarkdownH1Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.MarkdownH1))

	MarkdownH2Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.MarkdownH2))

	MarkdownH3Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.MarkdownH3))

	MarkdownH4Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextMuted)

	MarkdownBoldStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	MarkdownItalicStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(ColorText)

	MarkdownInlineCodeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.MarkdownCode))

	MarkdownLinkStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.MarkdownLink)).
		Underline(true)

	MarkdownListBulletStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.MarkdownListItem))

	MarkdownQuoteStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.MarkdownQuote)).
		Italic(true)

	MarkdownRuleStyle = lipgloss.NewStyle().
		Foreground(ColorBorder)

	AdmonitionInfoStyle = lipgloss.NewStyle().
		Foreground(ColorInfo).
		Bold(true)

	AdmonitionWarningStyle = lipgloss.NewStyle().
		Foreground(ColorWarning).
		Bold(true)

	AdmonitionImportantStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)
}
