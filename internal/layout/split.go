package layout

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/inkwell/internal/logger"
)

const (
	// DividerWidth is the width of the draggable boundary between panes
	DividerWidth = 1

	// MinPaneWidth is the narrowest a pane can be dragged to when the
	// terminal is wide enough to honor it
	MinPaneWidth = 10

	// DefaultRatio is the share of the width given to the left pane
	DefaultRatio = 0.5

	// dividerGrab is how many columns either side of the divider still grab it
	dividerGrab = 1
)

// ResizeEvent is emitted whenever the left pane's width or the split's
// height changes.
type ResizeEvent struct {
	LeftPaneWidth int
	Height        int
}

// Sizer is a child the split sizes directly.
type Sizer interface {
	SetSize(width, height int)
}

// Split is the two-pane container. It owns the total size, the split ratio
// and the drag state, and reports every change of the left pane's size
// through its resize callback.
type Split struct {
	width     int
	height    int
	ratio     float64
	leftWidth int
	dragging  bool

	onResize func(ResizeEvent)
	right    Sizer

	dividerStyle lipgloss.Style
	activeStyle  lipgloss.Style
}

// NewSplit creates a split with the given left-pane ratio. onResize is
// called synchronously for every resize.
func NewSplit(ratio float64, onResize func(ResizeEvent)) *Split {
	if ratio <= 0 || ratio >= 1 {
		ratio = DefaultRatio
	}
	return &Split{
		ratio:        ratio,
		onResize:     onResize,
		dividerStyle: lipgloss.NewStyle(),
		activeStyle:  lipgloss.NewStyle().Bold(true),
	}
}

// SetStyles sets the divider style at rest and while dragging.
func (s *Split) SetStyles(divider, active lipgloss.Style) {
	s.dividerStyle = divider
	s.activeStyle = active
}

// AttachRight sets the right child. It is sized immediately and after every
// layout change.
func (s *Split) AttachRight(child Sizer) {
	s.right = child
	if child != nil {
		child.SetSize(s.RightWidth(), s.height)
	}
}

// SetSize sets the total size of the split, keeping the current ratio.
func (s *Split) SetSize(width, height int) {
	s.width = max(0, width)
	s.height = max(0, height)
	s.apply(int(float64(s.usableWidth()) * s.ratio))
}

// Width returns the total width.
func (s *Split) Width() int { return s.width }

// Height returns the total height.
func (s *Split) Height() int { return s.height }

// LeftWidth returns the current left pane width.
func (s *Split) LeftWidth() int { return s.leftWidth }

// RightWidth returns the current right pane width.
func (s *Split) RightWidth() int {
	return max(0, s.usableWidth()-s.leftWidth)
}

// Ratio returns the left pane's share of the usable width.
func (s *Split) Ratio() float64 { return s.ratio }

// IsDragging reports whether a divider drag is in progress.
func (s *Split) IsDragging() bool { return s.dragging }

// Nudge moves the divider by delta columns.
func (s *Split) Nudge(delta int) {
	s.setLeft(s.leftWidth + delta)
}

// HandleMouse processes mouse events with coordinates relative to the
// split's top-left corner. It returns true when the event belonged to the
// divider.
func (s *Split) HandleMouse(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft || !s.onDivider(msg.X, msg.Y) {
			return false
		}
		s.dragging = true
		logger.WithComponent("layout").Debug("Divider drag started", "x", msg.X)
		return true

	case tea.MouseMotionMsg:
		if !s.dragging {
			return false
		}
		s.setLeft(msg.X)
		return true

	case tea.MouseReleaseMsg:
		if !s.dragging {
			return false
		}
		s.dragging = false
		s.setLeft(msg.X)
		logger.WithComponent("layout").Debug("Divider drag finished", "leftWidth", s.leftWidth, "ratio", s.ratio)
		return true
	}
	return false
}

func (s *Split) onDivider(x, y int) bool {
	if y < 0 || y >= s.height {
		return false
	}
	return x >= s.leftWidth-dividerGrab && x <= s.leftWidth+dividerGrab
}

// setLeft moves the divider and remembers the resulting ratio.
func (s *Split) setLeft(left int) {
	s.apply(left)
	if usable := s.usableWidth(); usable > 0 {
		s.ratio = float64(s.leftWidth) / float64(usable)
	}
}

// apply clamps left, sizes the right child and emits the resize event.
func (s *Split) apply(left int) {
	s.leftWidth = s.clampLeft(left)
	if s.right != nil {
		s.right.SetSize(s.RightWidth(), s.height)
	}
	if s.onResize != nil {
		s.onResize(ResizeEvent{LeftPaneWidth: s.leftWidth, Height: s.height})
	}
}

func (s *Split) usableWidth() int {
	return max(0, s.width-DividerWidth)
}

func (s *Split) clampLeft(left int) int {
	usable := s.usableWidth()
	lo, hi := 0, usable
	if usable >= 2*MinPaneWidth {
		lo, hi = MinPaneWidth, usable-MinPaneWidth
	}
	return min(max(left, lo), hi)
}

// View joins the two pane renderings with the divider, fitting every line
// to its pane's width.
func (s *Split) View(left, right string) string {
	if s.width == 0 || s.height == 0 {
		return ""
	}

	style := s.dividerStyle
	if s.dragging {
		style = s.activeStyle
	}
	divider := style.Render("│")

	leftLines := strings.Split(left, "\n")
	rightLines := strings.Split(right, "\n")
	rightWidth := s.RightWidth()

	rows := make([]string, s.height)
	for i := range rows {
		rows[i] = fitLine(lineAt(leftLines, i), s.leftWidth) + divider + fitLine(lineAt(rightLines, i), rightWidth)
	}
	return strings.Join(rows, "\n")
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}

// fitLine pads or truncates line to exactly width cells.
func fitLine(line string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(line)
	if w > width {
		return ansi.Truncate(line, width, "")
	}
	return line + strings.Repeat(" ", width-w)
}
