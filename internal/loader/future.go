package loader

import (
	"github.com/zhubert/inkwell/internal/document"
	"github.com/zhubert/inkwell/internal/errors"
)

// State is the settlement state of a Future.
type State int

const (
	StatePending State = iota
	StateFulfilled
	StateRejected
)

// String returns a human-readable name for the state
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateFulfilled:
		return "fulfilled"
	case StateRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Future is the one-shot outcome of a session load. It starts pending and
// settles exactly once; settled states are final.
type Future struct {
	state   State
	session *document.Session
	err     error
}

// NewFuture returns a pending future.
func NewFuture() *Future {
	return &Future{}
}

// Resolve settles the future with sess. It fails if already settled.
func (f *Future) Resolve(sess *document.Session) error {
	if f.state != StatePending {
		return errors.AlreadySettled(f.state.String())
	}
	f.state = StateFulfilled
	f.session = sess
	return nil
}

// Reject settles the future with err. It fails if already settled.
func (f *Future) Reject(err error) error {
	if f.state != StatePending {
		return errors.AlreadySettled(f.state.String())
	}
	f.state = StateRejected
	f.err = err
	return nil
}

// State returns the current state.
func (f *Future) State() State {
	return f.state
}

// Settled reports whether the future left the pending state.
func (f *Future) Settled() bool {
	return f.state != StatePending
}

// Match calls exactly one of the handlers according to the state of f and
// returns its result.
func Match[R any](f *Future, pending func() R, fulfilled func(*document.Session) R, rejected func(error) R) R {
	switch f.state {
	case StateFulfilled:
		return fulfilled(f.session)
	case StateRejected:
		return rejected(f.err)
	default:
		return pending()
	}
}
