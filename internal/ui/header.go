package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// appTitle is rendered bold at the left edge of the header
const appTitle = " inkwell"

// Header represents the top header bar
type Header struct {
	width    int
	docTitle string
	source   string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetDocTitle sets the compiled document title to display
func (h *Header) SetDocTitle(title string) {
	h.docTitle = title
}

// SetSource sets the description of where the document was loaded from
func (h *Header) SetSource(source string) {
	h.source = source
}

// View renders the header
func (h *Header) View() string {
	if h.width <= 0 {
		return ""
	}

	var rightText string
	if h.docTitle != "" {
		rightText = h.docTitle
	}
	if h.source != "" {
		if rightText != "" {
			rightText += " "
		}
		rightText += "(" + h.source + ")"
	}
	if rightText != "" {
		rightText += " "
	}

	// Drop the right side before it can push the title off screen
	titleWidth := runewidth.StringWidth(appTitle)
	if titleWidth+runewidth.StringWidth(rightText) > h.width {
		rightText = runewidth.Truncate(rightText, max(0, h.width-titleWidth-1), "…")
		if rightText != "" {
			rightText += " "
		}
	}

	paddingLen := h.width - titleWidth - runewidth.StringWidth(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := appTitle + strings.Repeat(" ", paddingLen) + rightText
	fullContent = runewidth.Truncate(fullContent, h.width, "")

	return h.renderGradient(fullContent)
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content with a theme-aware gradient background.
// The source portion in parentheses is rendered muted.
func (h *Header) renderGradient(content string) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)

	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	runes := []rune(content)
	sourceStart := -1
	if h.source != "" {
		if idx := strings.LastIndex(content, "("+h.source); idx >= 0 {
			sourceStart = len([]rune(content[:idx]))
		}
	}
	titleRunes := len([]rune(appTitle))

	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		style := lipgloss.NewStyle().
			Background(bgColor).
			Bold(i < titleRunes)

		if sourceStart >= 0 && i >= sourceStart {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
