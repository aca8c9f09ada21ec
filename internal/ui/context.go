package ui

import (
	"sync"

	"github.com/zhubert/inkwell/internal/logger"
)

// ViewContext holds centralized layout calculations and provides debug logging.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight  int
	FooterHeight  int
	ContentHeight int

	mu sync.Mutex
}

// Global view context instance
var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight: HeaderHeight,
			FooterHeight: FooterHeight,
		}
		logger.WithComponent("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// UpdateTerminalSize recalculates all dimensions when terminal size changes.
// showHeader controls whether a header row is reserved.
func (v *ViewContext) UpdateTerminalSize(width, height int, showHeader bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.TerminalWidth = max(0, width)
	v.TerminalHeight = max(0, height)

	v.HeaderHeight = 0
	if showHeader {
		v.HeaderHeight = HeaderHeight
	}
	v.FooterHeight = FooterHeight

	// Content area is everything between header and footer
	v.ContentHeight = max(0, v.TerminalHeight-v.HeaderHeight-v.FooterHeight)

	logger.WithComponent("ui").Debug("Terminal size updated",
		"width", width,
		"height", height,
		"headerHeight", v.HeaderHeight,
		"footerHeight", v.FooterHeight,
		"contentHeight", v.ContentHeight,
	)
}

// InnerWidth returns the usable width inside a panel with borders
func InnerWidth(panelWidth int) int {
	return max(0, panelWidth-BorderSize)
}

// InnerHeight returns the usable height inside a panel with borders
func InnerHeight(panelHeight int) int {
	return max(0, panelHeight-BorderSize)
}
