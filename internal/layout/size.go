// Package layout owns the editor/preview split: the split controller that
// turns drags into resize events, and the size model the editor pane follows.
package layout

import "github.com/zhubert/inkwell/internal/observe"

// Size is a pane size in terminal cells.
type Size struct {
	Width  int
	Height int
}

// clamp returns s with negative dimensions raised to zero.
func (s Size) clamp() Size {
	return Size{Width: max(0, s.Width), Height: max(0, s.Height)}
}

// SizeModel holds the editor pane's current size. The value is only ever
// replaced as a whole.
type SizeModel struct {
	size      Size
	listeners observe.Listeners[Size]
}

// NewSizeModel returns a model holding the zero size.
func NewSizeModel() *SizeModel {
	return &SizeModel{}
}

// Get returns the current size.
func (m *SizeModel) Get() Size {
	return m.size
}

// Set replaces the size and notifies listeners, even if nothing changed.
func (m *SizeModel) Set(s Size) {
	m.size = s.clamp()
	m.listeners.Notify(m.size)
}

// Subscribe registers fn to run after every Set.
func (m *SizeModel) Subscribe(fn func(Size)) (unsubscribe func()) {
	return m.listeners.Subscribe(fn)
}
