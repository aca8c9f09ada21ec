// Package errors provides structured error types for inkwell.
// These errors carry the operation that failed and a coarse category so
// callers can decide between recovering and giving up.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindIO
	KindNetwork
	KindConfig
	KindSession
	KindState
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindIO:
		return "I/O error"
	case KindNetwork:
		return "network error"
	case KindConfig:
		return "configuration error"
	case KindSession:
		return "session error"
	case KindState:
		return "invalid state"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for inkwell.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Fetch errors
func FetchStatus(url string, status int) error {
	return E(Op("loader.Fetch"), KindNetwork, fmt.Sprintf("GET %s returned status %d", url, status))
}

func FetchFailed(url string, err error) error {
	return E(Op("loader.Fetch"), KindNetwork, fmt.Sprintf("failed to fetch %s", url), err)
}

func FetchNotText(url, contentType string) error {
	return E(Op("loader.Fetch"), KindInvalid, fmt.Sprintf("%s returned non-text content type %q", url, contentType))
}

func ReadFailed(path string, err error) error {
	return E(Op("loader.Read"), KindIO, fmt.Sprintf("failed to read %s", path), err)
}

// Compile errors
func SourceTooLarge(size, limit int) error {
	return E(Op("document.Compile"), KindInvalid, fmt.Sprintf("source is %d bytes, limit is %d", size, limit))
}

// Session errors

func SessionCreateFailed(reason interface{}) error {
	return E(Op("loader.Load"), KindSession, fmt.Sprintf("session construction failed: %v", reason))
}

func AlreadySettled(state string) error {
	return E(Op("loader.Future"), KindState, fmt.Sprintf("future already %s", state))
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}
