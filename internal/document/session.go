package document

import (
	"github.com/google/uuid"

	"github.com/zhubert/inkwell/internal/logger"
	"github.com/zhubert/inkwell/internal/observe"
)

// MaxSourceSize is the largest source, in bytes, the compile API and the
// compile command accept. Editor sessions take any size.
const MaxSourceSize = 512 * 1024

// Document pairs a body with its compiled form.
type Document struct {
	Body     string
	Compiled *Compiled
}

// Session owns the single in-memory document of an editor view.
// It is not safe for concurrent use; all calls come from the UI event loop.
type Session struct {
	id        string
	doc       Document
	listeners observe.Listeners[Document]
}

// NewSession creates a session holding initial, verbatim.
func NewSession(initial string) (*Session, error) {
	s := &Session{id: uuid.New().String()}
	s.SetBody(initial)
	logger.WithSession(s.id).Info("Document session created", "bytes", len(initial), "blocks", len(s.doc.Compiled.Blocks))
	return s, nil
}

// ID returns the session identifier used for log scoping.
func (s *Session) ID() string {
	return s.id
}

// SetBody replaces the body and recompiles it before any listener runs, so
// Body and Compiled always agree once SetBody returns.
func (s *Session) SetBody(text string) {
	s.doc = Document{Body: text, Compiled: Compile(text)}
	s.listeners.Notify(s.doc)
}

// Body returns the current body.
func (s *Session) Body() string {
	return s.doc.Body
}

// Compiled returns the compiled form of the current body.
func (s *Session) Compiled() *Compiled {
	return s.doc.Compiled
}

// Snapshot returns the current body and compiled form together.
func (s *Session) Snapshot() Document {
	return s.doc
}

// Subscribe registers fn to run after every SetBody.
func (s *Session) Subscribe(fn func(Document)) (unsubscribe func()) {
	return s.listeners.Subscribe(fn)
}
