// Package loader bootstraps the editor's document session: it fetches the
// initial text, builds the session, and reports the outcome as a Future.
package loader

import (
	"context"
	"fmt"

	"github.com/zhubert/inkwell/internal/document"
	"github.com/zhubert/inkwell/internal/errors"
	"github.com/zhubert/inkwell/internal/logger"
)

// SessionFactory builds a session from an initial body.
type SessionFactory func(body string) (*document.Session, error)

// Loader performs the one-shot session bootstrap.
type Loader struct {
	fetcher    Fetcher
	newSession SessionFactory
}

// Option configures a Loader.
type Option func(*Loader)

// WithSessionFactory replaces document.NewSession as the session constructor.
func WithSessionFactory(fn SessionFactory) Option {
	return func(l *Loader) {
		l.newSession = fn
	}
}

// New creates a Loader that reads its initial text from fetcher.
func New(fetcher Fetcher, opts ...Option) *Loader {
	l := &Loader{
		fetcher:    fetcher,
		newSession: document.NewSession,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// fetch calls the fetcher, turning a panic into an error.
func (l *Loader) fetch(ctx context.Context) (body string, err error) {
	defer func() {
		if r := recover(); r != nil {
			body, err = "", errors.E(errors.Op("loader.Fetch"), errors.KindUnknown, fmt.Sprintf("fetcher panicked: %v", r))
		}
	}()
	return l.fetcher.Fetch(ctx)
}

// Load fetches the initial body and constructs the session.
//
// A failed fetch is logged and replaced with an empty body; it never makes
// Load fail. Only session construction can fail, including by panicking,
// and that error is what rejects the view's Future.
func (l *Loader) Load(ctx context.Context) (sess *document.Session, err error) {
	log := logger.WithComponent("loader")

	body, fetchErr := l.fetch(ctx)
	if fetchErr != nil {
		log.Error("Initial fetch failed, starting with an empty document", "error", fetchErr)
		body = ""
	} else {
		log.Info("Initial document fetched", "bytes", len(body))
	}

	defer func() {
		if r := recover(); r != nil {
			sess = nil
			err = errors.SessionCreateFailed(r)
		}
	}()

	sess, err = l.newSession(body)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, errors.SessionCreateFailed("constructor returned no session")
	}
	return sess, nil
}
