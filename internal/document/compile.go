package document

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// BlockKind identifies the kind of a compiled block.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockListItem
	BlockOrderedItem
	BlockListing
	BlockQuote
	BlockRule
	BlockAdmonition
	BlockBlank
)

// String returns the lowercase name used in the compile API.
func (k BlockKind) String() string {
	switch k {
	case BlockParagraph:
		return "paragraph"
	case BlockHeading:
		return "heading"
	case BlockListItem:
		return "list_item"
	case BlockOrderedItem:
		return "ordered_item"
	case BlockListing:
		return "listing"
	case BlockQuote:
		return "quote"
	case BlockRule:
		return "rule"
	case BlockAdmonition:
		return "admonition"
	case BlockBlank:
		return "blank"
	default:
		return "unknown"
	}
}

// MarshalText lets blocks serialize their kind by name.
func (k BlockKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Block is one render-ready unit of a compiled document.
type Block struct {
	Kind BlockKind `json:"kind"`
	// Level is the heading level (0 = document title) or the list nesting depth (1-based).
	Level int `json:"level,omitempty"`
	// Label is the admonition label (NOTE, TIP, ...).
	Label string `json:"label,omitempty"`
	Text  string `json:"text"`
	// Language is the source language of a listing block, if declared.
	Language string `json:"language,omitempty"`
	// Line is the 1-based source line the block starts on.
	Line int `json:"line"`
}

// Compiled is the derived, render-ready form of a document body.
// A Compiled value is never mutated after Compile returns it.
type Compiled struct {
	Title    string   `json:"title"`
	Blocks   []Block  `json:"blocks"`
	Warnings []string `json:"warnings,omitempty"`
}

var (
	headingPattern    = regexp.MustCompile(`^(={1,6}|#{1,6})\s+(\S.*)$`)
	unorderedPattern  = regexp.MustCompile(`^(\*{1,5}|-)\s+(\S.*)$`)
	orderedPattern    = regexp.MustCompile(`^(\.{1,5}|\d+\.)\s+(\S.*)$`)
	attributePattern  = regexp.MustCompile(`^\[(source|listing)(?:,\s*([\w+#.-]+))?[^\]]*\]$`)
	admonitionPattern = regexp.MustCompile(`^(NOTE|TIP|IMPORTANT|WARNING|CAUTION):\s+(.*)$`)
)

const (
	listingDelimiter   = "----"
	literalDelimiter   = "...."
	quoteDelimiter     = "____"
	ruleMarker         = "'''"
	markdownFence      = "```"
	lineCommentPrefix  = "//"
	commentBlockMarker = "////"
)

// Compile turns a document body into its compiled form. It is pure: the same
// body always yields an equal result and nothing outside the return value is
// touched.
func Compile(body string) *Compiled {
	c := &compiler{out: &Compiled{Blocks: []Block{}}}
	c.run(splitLines(body))
	return c.out
}

type compiler struct {
	out       *Compiled
	paragraph []string
	paraLine  int
	pendLang  string
	hasLang   bool // a [source] attribute is waiting for its listing block
}

func splitLines(body string) []string {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	if body == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(body, "\n"), "\n")
}

func (c *compiler) run(lines []string) {
	for i := 0; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], " \t")
		lineNo := i + 1

		switch {
		case line == commentBlockMarker:
			c.flushParagraph()
			end := findDelimiter(lines, i+1, commentBlockMarker)
			if end < 0 {
				c.warn(lineNo, "unterminated comment block")
				i = len(lines)
			} else {
				i = end
			}
			continue

		case strings.HasPrefix(line, lineCommentPrefix):
			continue

		case line == listingDelimiter || line == literalDelimiter || strings.HasPrefix(line, markdownFence):
			c.flushParagraph()
			delim := line
			lang := c.takeLanguage()
			if strings.HasPrefix(line, markdownFence) {
				delim = markdownFence
				if fenceLang := strings.TrimSpace(strings.TrimPrefix(line, markdownFence)); fenceLang != "" {
					lang = fenceLang
				}
			}
			end := findDelimiter(lines, i+1, delim)
			var body []string
			if end < 0 {
				c.warn(lineNo, "unterminated listing block")
				body = lines[i+1:]
				i = len(lines)
			} else {
				body = lines[i+1 : end]
				i = end
			}
			c.emit(Block{Kind: BlockListing, Text: strings.Join(body, "\n"), Language: lang, Line: lineNo})
			continue

		case line == quoteDelimiter:
			c.flushParagraph()
			end := findDelimiter(lines, i+1, quoteDelimiter)
			var body []string
			if end < 0 {
				c.warn(lineNo, "unterminated quote block")
				body = lines[i+1:]
				i = len(lines)
			} else {
				body = lines[i+1 : end]
				i = end
			}
			c.emit(Block{Kind: BlockQuote, Text: joinParagraph(body), Line: lineNo})
			continue
		}

		if line == "" {
			c.flushParagraph()
			c.emit(Block{Kind: BlockBlank, Line: lineNo})
			continue
		}

		if m := attributePattern.FindStringSubmatch(line); m != nil {
			c.flushParagraph()
			c.pendLang = m[2]
			c.hasLang = true
			continue
		}

		if line == ruleMarker {
			c.flushParagraph()
			c.emit(Block{Kind: BlockRule, Line: lineNo})
			continue
		}

		if m := headingPattern.FindStringSubmatch(line); m != nil {
			c.flushParagraph()
			level := len(m[1]) - 1
			text := strings.TrimSpace(m[2])
			if level == 0 && c.out.Title == "" {
				c.out.Title = text
			}
			c.emit(Block{Kind: BlockHeading, Level: level, Text: text, Line: lineNo})
			continue
		}

		if m := admonitionPattern.FindStringSubmatch(line); m != nil {
			c.flushParagraph()
			c.emit(Block{Kind: BlockAdmonition, Label: m[1], Text: strings.TrimSpace(m[2]), Line: lineNo})
			continue
		}

		if m := unorderedPattern.FindStringSubmatch(line); m != nil {
			c.flushParagraph()
			depth := len(m[1])
			if m[1] == "-" {
				depth = 1
			}
			c.emit(Block{Kind: BlockListItem, Level: depth, Text: m[2], Line: lineNo})
			continue
		}

		if m := orderedPattern.FindStringSubmatch(line); m != nil {
			c.flushParagraph()
			depth := 1
			if strings.HasPrefix(m[1], ".") {
				depth = len(m[1])
			}
			c.emit(Block{Kind: BlockOrderedItem, Level: depth, Text: m[2], Line: lineNo})
			continue
		}

		if len(c.paragraph) == 0 {
			c.paraLine = lineNo
		}
		c.paragraph = append(c.paragraph, line)
	}
	c.flushParagraph()
	if c.hasLang {
		c.warn(len(lines), "source attribute without a following listing block")
	}
}

// takeLanguage consumes a pending [source,lang] attribute.
func (c *compiler) takeLanguage() string {
	lang := c.pendLang
	c.pendLang = ""
	c.hasLang = false
	return lang
}

func (c *compiler) flushParagraph() {
	if len(c.paragraph) == 0 {
		return
	}
	c.emit(Block{Kind: BlockParagraph, Text: joinParagraph(c.paragraph), Line: c.paraLine})
	c.paragraph = nil
}

func (c *compiler) emit(b Block) {
	if c.hasLang && b.Kind != BlockListing {
		c.warn(b.Line, "source attribute without a following listing block")
		c.pendLang = ""
		c.hasLang = false
	}
	// Collapse runs of blank lines into one separator.
	if b.Kind == BlockBlank {
		n := len(c.out.Blocks)
		if n == 0 || c.out.Blocks[n-1].Kind == BlockBlank {
			return
		}
	}
	c.out.Blocks = append(c.out.Blocks, b)
}

func (c *compiler) warn(line int, msg string) {
	c.out.Warnings = append(c.out.Warnings, fmt.Sprintf("line %d: %s", line, msg))
}

func findDelimiter(lines []string, from int, delim string) int {
	for j := from; j < len(lines); j++ {
		if strings.TrimRight(lines[j], " \t") == delim {
			return j
		}
	}
	return -1
}

func joinParagraph(lines []string) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		if t := strings.TrimSpace(l); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// PlainText renders the compiled document without styling.
func (c *Compiled) PlainText() string {
	var sb strings.Builder
	for _, b := range c.Blocks {
		switch b.Kind {
		case BlockHeading:
			sb.WriteString(b.Text)
			sb.WriteString("\n")
			if b.Level <= 1 {
				sb.WriteString(strings.Repeat("=", runewidth.StringWidth(b.Text)))
				sb.WriteString("\n")
			}
		case BlockListItem:
			sb.WriteString(strings.Repeat("  ", b.Level-1) + "• " + b.Text + "\n")
		case BlockOrderedItem:
			sb.WriteString(strings.Repeat("  ", b.Level-1) + "- " + b.Text + "\n")
		case BlockListing:
			for _, l := range strings.Split(b.Text, "\n") {
				sb.WriteString("    " + l + "\n")
			}
		case BlockQuote:
			sb.WriteString("> " + b.Text + "\n")
		case BlockRule:
			sb.WriteString("---\n")
		case BlockAdmonition:
			sb.WriteString(b.Label + ": " + b.Text + "\n")
		case BlockBlank:
			sb.WriteString("\n")
		default:
			sb.WriteString(b.Text + "\n")
		}
	}
	return sb.String()
}
