package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/inkwell/internal/layout"
)

func typeText(e *Editor, text string) {
	for _, r := range text {
		e.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestNewEditor_InitialBody(t *testing.T) {
	e := NewEditor(EditorConfig{
		Size:        layout.Size{Width: 40, Height: 10},
		InitialBody: "= Title\n\nSome text",
	})

	if got := e.Value(); got != "= Title\n\nSome text" {
		t.Errorf("Value() = %q, want initial body", got)
	}

	if got := e.Size(); got != (layout.Size{Width: 40, Height: 10}) {
		t.Errorf("Size() = %+v, want 40x10", got)
	}
}

func TestNewEditor_LongBodyIsNotTruncated(t *testing.T) {
	body := strings.Repeat("line\n", 500) + "end"

	e := NewEditor(EditorConfig{InitialBody: body})

	if e.Value() != body {
		t.Errorf("Value() lost content: got %d bytes, want %d", len(e.Value()), len(body))
	}
}

func TestEditor_TypingReportsBody(t *testing.T) {
	var changes []string
	e := NewEditor(EditorConfig{
		Size:         layout.Size{Width: 40, Height: 10},
		OnBodyChange: func(s string) { changes = append(changes, s) },
	})
	e.Focus()

	typeText(e, "hello")

	if len(changes) != 5 {
		t.Fatalf("OnBodyChange called %d times, want 5", len(changes))
	}
	if changes[len(changes)-1] != "hello" {
		t.Errorf("last change = %q, want %q", changes[len(changes)-1], "hello")
	}
}

func TestEditor_NonEditingKeyDoesNotReport(t *testing.T) {
	calls := 0
	e := NewEditor(EditorConfig{
		Size:         layout.Size{Width: 40, Height: 10},
		InitialBody:  "abc",
		OnBodyChange: func(string) { calls++ },
	})
	e.Focus()

	e.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	e.Update(tea.KeyPressMsg{Code: tea.KeyRight})

	if calls != 0 {
		t.Errorf("OnBodyChange called %d times for cursor movement, want 0", calls)
	}
}

func TestEditor_UnfocusedIgnoresTyping(t *testing.T) {
	calls := 0
	e := NewEditor(EditorConfig{
		Size:         layout.Size{Width: 40, Height: 10},
		OnBodyChange: func(string) { calls++ },
	})

	typeText(e, "x")

	if calls != 0 || e.Value() != "" {
		t.Errorf("unfocused editor accepted input: value %q, calls %d", e.Value(), calls)
	}
}

func TestEditor_SetSizeKeepsText(t *testing.T) {
	calls := 0
	e := NewEditor(EditorConfig{
		Size:         layout.Size{Width: 40, Height: 10},
		InitialBody:  "keep me",
		OnBodyChange: func(string) { calls++ },
	})

	for _, s := range []layout.Size{{Width: 300, Height: 600}, {Width: 0, Height: 0}, {Width: 12, Height: 4}} {
		e.SetSize(s)
		if e.Size() != s {
			t.Errorf("Size() = %+v, want %+v", e.Size(), s)
		}
	}

	if e.Value() != "keep me" {
		t.Errorf("Value() = %q after resizing, want %q", e.Value(), "keep me")
	}
	if calls != 0 {
		t.Errorf("resizing reported %d body changes, want 0", calls)
	}
}

func TestEditor_View(t *testing.T) {
	e := NewEditor(EditorConfig{InitialBody: "visible text"})

	if got := e.View(); got != "" {
		t.Errorf("View() at zero size = %q, want empty", got)
	}

	e.SetSize(layout.Size{Width: 30, Height: 6})
	view := stripANSI(e.View())

	if !strings.Contains(view, "visible text") {
		t.Errorf("View() should show the text, got: %q", view)
	}
	if lines := strings.Split(view, "\n"); len(lines) != 6 {
		t.Errorf("View() has %d rows, want 6", len(lines))
	}
}
