package app

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/inkwell/internal/clipboard"
	"github.com/zhubert/inkwell/internal/config"
	"github.com/zhubert/inkwell/internal/document"
	"github.com/zhubert/inkwell/internal/errors"
	"github.com/zhubert/inkwell/internal/layout"
	"github.com/zhubert/inkwell/internal/loader"
	"github.com/zhubert/inkwell/internal/logger"
	"github.com/zhubert/inkwell/internal/notification"
	"github.com/zhubert/inkwell/internal/ui"
)

// Model is the main Bubble Tea model: the edit view. It starts pending,
// loads its document session once, and then shows the editor and preview
// side by side for the rest of its life.
type Model struct {
	config  *config.Config
	version string // App version (injected at build time)
	log     *slog.Logger

	header  *ui.Header
	footer  *ui.Footer
	preview *ui.Preview
	editor  *ui.Editor // nil until the session is loaded

	split     *layout.Split
	sizeModel *layout.SizeModel

	loader      *loader.Loader
	future      *loader.Future
	loadStarted bool
	session     *document.Session
	unsubscribe []func()

	width      int
	height     int
	showHeader bool
	source     string

	copyText      func(string) error
	notifyFailure func(source string) error
	statusSeq     int
}

// SessionLoadedMsg carries the result of the initial load back to the event loop
type SessionLoadedMsg struct {
	Session *document.Session
	Err     error
}

// New creates a new app model. The document is not loaded until Init runs.
func New(cfg *config.Config, version string, ld *loader.Loader, opts ...Option) *Model {
	// Load saved theme from config, or use default
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	m := &Model{
		config:        cfg,
		version:       version,
		log:           logger.WithComponent("app"),
		header:        ui.NewHeader(),
		footer:        ui.NewFooter(),
		preview:       ui.NewPreview(),
		sizeModel:     layout.NewSizeModel(),
		loader:        ld,
		future:        loader.NewFuture(),
		showHeader:    !cfg.GetHideHeader(),
		copyText:      clipboard.WriteText,
		notifyFailure: notification.LoadFailed,
	}
	m.split = layout.NewSplit(cfg.GetSplitRatio(), m.handleResize)
	m.split.SetStyles(ui.DividerStyle, ui.DividerActiveStyle)
	m.footer.SetBindings(footerBindings())

	for _, opt := range opts {
		opt(m)
	}
	m.header.SetSource(m.source)

	return m
}

// State returns the load state of the view
func (m *Model) State() loader.State {
	return m.future.State()
}

// Session returns the loaded document session, or nil before it is loaded
func (m *Model) Session() *document.Session {
	return m.session
}

// Init starts the initial load. Only the first call does anything.
func (m *Model) Init() tea.Cmd {
	if m.loadStarted {
		return nil
	}
	m.loadStarted = true
	m.log.Debug("Starting initial load", "source", m.source)

	ld := m.loader
	return func() tea.Msg {
		sess, err := ld.Load(context.Background())
		return SessionLoadedMsg{Session: sess, Err: err}
	}
}

// handleSessionLoaded settles the future and mounts the edit view on success.
func (m *Model) handleSessionLoaded(msg SessionLoadedMsg) tea.Cmd {
	if msg.Err == nil && msg.Session == nil {
		msg.Err = errors.SessionCreateFailed("loader returned no session")
	}

	if msg.Err != nil {
		if err := m.future.Reject(msg.Err); err != nil {
			m.log.Warn("Ignoring late load result", "error", err)
			return nil
		}
		m.log.Error("Failed to open document session", "error", msg.Err, "kind", errors.GetKind(msg.Err))
		// The view stays blank, so tell the user outside the terminal
		if err := m.notifyFailure(m.source); err != nil {
			m.log.Debug("Load failure notification not delivered", "error", err)
		}
		return nil
	}

	if err := m.future.Resolve(msg.Session); err != nil {
		m.log.Warn("Ignoring late load result", "error", err)
		return nil
	}
	m.log.Info("Document session ready", "sessionID", msg.Session.ID())
	return m.mount(msg.Session)
}

// mount wires the session into the editor, preview, header and footer.
func (m *Model) mount(sess *document.Session) tea.Cmd {
	m.session = sess
	doc := sess.Snapshot()
	m.documentChanged(doc)

	m.unsubscribe = append(m.unsubscribe, sess.Subscribe(m.documentChanged))
	m.split.AttachRight(m.preview)

	m.editor = ui.NewEditor(ui.EditorConfig{
		Size:         m.sizeModel.Get(),
		InitialBody:  doc.Body,
		OnBodyChange: sess.SetBody,
	})
	m.unsubscribe = append(m.unsubscribe, m.sizeModel.Subscribe(m.editor.SetSize))

	return m.editor.Focus()
}

// documentChanged refreshes everything derived from the document.
func (m *Model) documentChanged(doc document.Document) {
	m.preview.SetCompiled(doc.Compiled)
	m.header.SetDocTitle(doc.Compiled.Title)
	m.footer.SetDocument(doc.Body, doc.Compiled.Warnings)
}

// handleResize records a new editor pane size. It runs for every resize,
// whatever the load state, so the editor mounts with the latest size.
func (m *Model) handleResize(e layout.ResizeEvent) {
	m.sizeModel.Set(layout.Size{Width: e.LeftPaneWidth, Height: e.Height})
}

// updateSizes lays out the header, split and footer for the terminal size.
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height, m.showHeader)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.split.SetSize(ctx.TerminalWidth, ctx.ContentHeight)
}

func (m *Model) headerHeight() int {
	if m.showHeader {
		return ui.HeaderHeight
	}
	return 0
}

// persistLayout saves the split ratio if the user moved the divider.
func (m *Model) persistLayout() {
	ratio := m.split.Ratio()
	if m.config.Path() == "" || ratio == m.config.GetSplitRatio() {
		return
	}
	m.config.SetSplitRatio(ratio)
	if err := m.config.Save(); err != nil {
		m.log.Warn("Failed to save split ratio", "error", err)
	}
}

// Close releases all subscriptions.
func (m *Model) Close() {
	for _, unsubscribe := range m.unsubscribe {
		unsubscribe()
	}
	m.unsubscribe = nil
}
