package ui

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/inkwell/internal/document"
)

// Inline markup patterns
var (
	inlineCodePattern = regexp.MustCompile("`([^`\n]+)`")
	boldPattern       = regexp.MustCompile(`\*([^*\s](?:[^*]*[^*\s])?)\*`)
	italicPattern     = regexp.MustCompile(`(^|[^\p{L}\p{N}_])_([^_\s](?:[^_]*[^_\s])?)_([^\p{L}\p{N}_]|$)`)
	linkPattern       = regexp.MustCompile(`(?:link:)?(https?://[^\s\[]+)\[([^\]]*)\]`)
)

// Preview is the right pane: a scrollable rendering of the compiled document.
type Preview struct {
	width    int
	height   int
	viewport viewport.Model
	compiled *document.Compiled
}

// NewPreview creates an empty preview pane.
func NewPreview() *Preview {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = PreviewWheelDelta

	return &Preview{viewport: vp}
}

// SetSize sets the outer pane size, border included.
func (p *Preview) SetSize(width, height int) {
	p.width = width
	p.height = height

	p.viewport.SetWidth(InnerWidth(width))
	p.viewport.SetHeight(max(0, InnerHeight(height)-PanelTitleHeight))
	p.refresh()
}

// Width returns the outer pane width.
func (p *Preview) Width() int { return p.width }

// Height returns the outer pane height.
func (p *Preview) Height() int { return p.height }

// SetCompiled replaces the document being shown.
func (p *Preview) SetCompiled(c *document.Compiled) {
	p.compiled = c
	p.refresh()
}

// Update handles scrolling messages.
func (p *Preview) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

// ScrollPercent reports how far the preview is scrolled, from 0 to 1.
func (p *Preview) ScrollPercent() float64 {
	return p.viewport.ScrollPercent()
}

// AtTop reports whether the first line is visible.
func (p *Preview) AtTop() bool {
	return p.viewport.AtTop()
}

func (p *Preview) refresh() {
	p.viewport.SetContent(RenderCompiled(p.compiled, p.viewport.Width()))
}

// View renders the preview pane, or nothing when there is no room for it.
func (p *Preview) View() string {
	if p.width <= BorderSize || p.height <= BorderSize+PanelTitleHeight {
		return ""
	}

	title := "Preview"
	if p.compiled != nil && len(p.compiled.Warnings) > 0 {
		title += FooterWarningStyle.Render(fmt.Sprintf(" (%d warnings)", len(p.compiled.Warnings)))
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		PanelTitleStyle.Render(title),
		p.viewport.View(),
	)
	return PanelStyle.Width(p.width).Height(p.height).Render(content)
}

// RenderCompiled renders a compiled document for a pane of the given width.
func RenderCompiled(c *document.Compiled, width int) string {
	if c == nil {
		return ""
	}
	if width <= 0 {
		width = DefaultWrapWidth
	}

	var lines []string
	ordinals := map[int]int{}
	for _, b := range c.Blocks {
		switch b.Kind {
		case document.BlockOrderedItem:
		case document.BlockListItem, document.BlockBlank:
		default:
			clear(ordinals)
		}
		lines = append(lines, renderBlock(b, width, ordinals))
	}
	return strings.Join(lines, "\n")
}

func renderBlock(b document.Block, width int, ordinals map[int]int) string {
	switch b.Kind {
	case document.BlockHeading:
		text := renderInline(b.Text)
		switch {
		case b.Level <= 1:
			return MarkdownH1Style.Render(text)
		case b.Level == 2:
			return MarkdownH2Style.Render(text)
		case b.Level == 3:
			return MarkdownH3Style.Render(text)
		default:
			return MarkdownH4Style.Render(text)
		}

	case document.BlockParagraph:
		return wrapText(renderInline(b.Text), width)

	case document.BlockListItem:
		bullet := MarkdownListBulletStyle.Render("•")
		return renderItem(b.Level, bullet, 1, b.Text, width)

	case document.BlockOrderedItem:
		ordinals[b.Level]++
		for level := range ordinals {
			if level > b.Level {
				delete(ordinals, level)
			}
		}
		number := fmt.Sprintf("%d.", ordinals[b.Level])
		return renderItem(b.Level, MarkdownListBulletStyle.Render(number), len(number), b.Text, width)

	case document.BlockListing:
		return renderListing(b.Text, b.Language)

	case document.BlockQuote:
		bar := MarkdownQuoteStyle.Render("│ ")
		var out []string
		for _, para := range strings.Split(b.Text, "\n") {
			wrapped := wrapText(renderInline(para), width-2)
			for _, line := range strings.Split(wrapped, "\n") {
				out = append(out, bar+MarkdownQuoteStyle.Render(line))
			}
		}
		return strings.Join(out, "\n")

	case document.BlockRule:
		return MarkdownRuleStyle.Render(strings.Repeat("─", width))

	case document.BlockAdmonition:
		label := admonitionStyle(b.Label).Render(b.Label + ":")
		return wrapText(label+" "+renderInline(b.Text), width)

	default:
		return ""
	}
}

// renderItem renders a list item with its marker, indenting continuation lines.
func renderItem(level int, marker string, markerWidth int, text string, width int) string {
	indent := strings.Repeat("  ", max(1, level))
	hang := indent + strings.Repeat(" ", markerWidth+1)

	wrapped := wrapText(renderInline(text), width-len(hang))
	lines := strings.Split(wrapped, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = hang + lines[i]
	}
	return indent + marker + " " + strings.Join(lines, "\n")
}

// renderListing renders a source block, highlighted when its language is known.
func renderListing(code, language string) string {
	var body string
	if language != "" {
		body = strings.TrimRight(highlightCode(code, language), "\n")
	} else {
		body = MarkdownInlineCodeStyle.Render(code)
	}

	lines := strings.Split(body, "\n")
	for i := range lines {
		lines[i] = "  " + lines[i]
	}
	return strings.Join(lines, "\n")
}

func admonitionStyle(label string) lipgloss.Style {
	switch label {
	case "WARNING", "CAUTION":
		return AdmonitionWarningStyle
	case "IMPORTANT":
		return AdmonitionImportantStyle
	default:
		return AdmonitionInfoStyle
	}
}

// highlightCode applies syntax highlighting to code using chroma
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(CurrentTheme().CodeStyle)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return buf.String()
}

// renderInline applies inline formatting (code, links, bold, italic) to text
func renderInline(text string) string {
	// Code spans and links are swapped for NUL-delimited placeholders so the
	// emphasis patterns never reach inside them. NUL in the source is shown
	// as U+FFFD and can never form a placeholder.
	text = strings.ReplaceAll(text, "\x00", "\uFFFD")

	var spans []string
	protect := func(rendered string) string {
		spans = append(spans, rendered)
		return fmt.Sprintf("\x00%d\x00", len(spans)-1)
	}

	text = inlineCodePattern.ReplaceAllStringFunc(text, func(match string) string {
		code := inlineCodePattern.FindStringSubmatch(match)[1]
		return protect(MarkdownInlineCodeStyle.Render(code))
	})

	text = linkPattern.ReplaceAllStringFunc(text, func(match string) string {
		parts := linkPattern.FindStringSubmatch(match)
		url, label := parts[1], parts[2]
		if label == "" {
			return protect(MarkdownLinkStyle.Render(url))
		}
		return protect(MarkdownLinkStyle.Render(label) + " (" + MarkdownLinkStyle.Render(url) + ")")
	})

	text = boldPattern.ReplaceAllStringFunc(text, func(match string) string {
		return MarkdownBoldStyle.Render(boldPattern.FindStringSubmatch(match)[1])
	})

	text = italicPattern.ReplaceAllStringFunc(text, func(match string) string {
		parts := italicPattern.FindStringSubmatch(match)
		return parts[1] + MarkdownItalicStyle.Render(parts[2]) + parts[3]
	})

	for i, rendered := range spans {
		text = strings.Replace(text, fmt.Sprintf("\x00%d\x00", i), rendered, 1)
	}
	return text
}

// wrapText wraps text to the specified width, handling ANSI escape codes.
// Words longer than width are broken.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return ansi.Wrap(text, width, "")
}
