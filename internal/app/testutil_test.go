package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/inkwell/internal/config"
	"github.com/zhubert/inkwell/internal/keys"
	"github.com/zhubert/inkwell/internal/loader"
)

// testConfig creates a minimal in-memory config for testing.
func testConfig() *config.Config {
	return &config.Config{SplitRatio: config.DefaultSplitRatio}
}

// clipboardRecorder captures copied text instead of touching the system clipboard.
type clipboardRecorder struct {
	copied []string
	err    error
}

func (c *clipboardRecorder) write(text string) error {
	if c.err != nil {
		return c.err
	}
	c.copied = append(c.copied, text)
	return nil
}

// failureRecorder captures load-failure notifications.
type failureRecorder struct {
	sources []string
}

func (r *failureRecorder) notify(source string) error {
	r.sources = append(r.sources, source)
	return nil
}

// testOptions keeps tests off the system clipboard and notification center.
func testOptions(clip *clipboardRecorder) []Option {
	return []Option{
		WithClipboard(clip.write),
		WithFailureNotifier((&failureRecorder{}).notify),
	}
}

// testModel creates a test Model that loads from f.
func testModel(f loader.Fetcher, opts ...loader.Option) (*Model, *clipboardRecorder) {
	clip := &clipboardRecorder{}
	m := New(testConfig(), "0.0.0-test", loader.New(f, opts...), testOptions(clip)...)
	return m, clip
}

// testModelWithSize creates a test Model and sets its size.
func testModelWithSize(f loader.Fetcher, width, height int) (*Model, *clipboardRecorder) {
	m, clip := testModel(f)
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m, clip
}

// load runs the model's initial load to completion on the calling goroutine.
func load(t *testing.T, m *Model) {
	t.Helper()
	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init() returned no load command")
	}
	m.Update(cmd())
}

// loadedModel creates a sized model and completes its load.
func loadedModel(t *testing.T, body string) (*Model, *clipboardRecorder) {
	t.Helper()
	m, clip := testModelWithSize(loader.StaticFetcher(body), 121, 40)
	load(t, m)
	if m.State() != loader.StateFulfilled {
		t.Fatalf("State() = %v, want fulfilled", m.State())
	}
	return m, clip
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "a", "ctrl+q", "pgdown", "ctrl+left"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case keys.PgDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case keys.CtrlLeft:
		return tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModCtrl}
	case keys.CtrlRight:
		return tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModCtrl}
	}
	if rest, ok := strings.CutPrefix(key, "ctrl+"); ok && len(rest) == 1 {
		return tea.KeyPressMsg{Code: rune(rest[0]), Mod: tea.ModCtrl}
	}
	return tea.KeyPressMsg{Code: []rune(key)[0], Text: key}
}

// typeText sends each rune of text as a key press.
func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

// longDocument returns a body whose preview is much taller than any test terminal.
func longDocument() string {
	var b strings.Builder
	b.WriteString("= Long\n\n")
	for range 120 {
		b.WriteString("A paragraph of text.\n\n")
	}
	return b.String()
}

// mustLoadConfig loads a file-backed config for tests that persist settings.
func mustLoadConfig(t *testing.T, path string) *config.Config {
	t.Helper()
	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("config.LoadFrom: %v", err)
	}
	return cfg
}
