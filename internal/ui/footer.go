package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer represents the bottom footer bar with keybindings and document stats
type Footer struct {
	width    int
	bindings []KeyBinding
	loaded   bool
	lines    int
	chars    int
	warning  string
	status   string
}

// NewFooter creates a footer with no bindings until SetBindings is called
func NewFooter() *Footer {
	return &Footer{}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetDocument updates the stats from the current body and the first compile
// warning, if any. Character counts are user-perceived characters.
func (f *Footer) SetDocument(body string, warnings []string) {
	f.loaded = true
	f.lines = strings.Count(body, "\n") + 1
	f.chars = uniseg.GraphemeClusterCount(body)
	f.warning = ""
	if len(warnings) > 0 {
		f.warning = warnings[0]
	}
}

// SetStatus sets a short transient status (e.g. "copied") shown before the stats
func (f *Footer) SetStatus(status string) {
	f.status = status
}

// Stats returns the line and character counts last set
func (f *Footer) Stats() (lines, chars int) {
	return f.lines, f.chars
}

// View renders the footer
func (f *Footer) View() string {
	if f.width <= 0 {
		return ""
	}

	sep := "  " + lipgloss.NewStyle().Foreground(ColorBorder).Render("|") + "  "

	var parts []string
	if f.loaded {
		for _, b := range f.bindings {
			key := FooterKeyStyle.Render(b.Key)
			desc := FooterDescStyle.Render(": " + b.Desc)
			parts = append(parts, key+desc)
		}
	} else {
		parts = append(parts, FooterKeyStyle.Render("ctrl+c")+FooterDescStyle.Render(": quit"))
	}

	var right []string
	if f.status != "" {
		right = append(right, FooterKeyStyle.Render(f.status))
	}
	if f.warning != "" {
		right = append(right, FooterWarningStyle.Render("⚠ "+f.warning))
	}
	if f.loaded {
		right = append(right, FooterDescStyle.Render(fmt.Sprintf("%d lines, %d chars", f.lines, f.chars)))
	}

	content := strings.Join(append(parts, right...), sep)

	// Keep the footer on a single row
	inner := max(0, f.width-2)
	if ansi.StringWidth(content) > inner {
		content = ansi.Truncate(content, inner, "…")
	}

	return FooterStyle.Width(f.width).Render(content)
}
