// Package server serves the scratch document and the compile API over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/zhubert/inkwell/internal/document"
	inkerrors "github.com/zhubert/inkwell/internal/errors"
	"github.com/zhubert/inkwell/internal/logger"
	"github.com/zhubert/inkwell/internal/scratch"
)

// CompilePath is the route of the compile API.
const CompilePath = "/api/v1/compile"

// DefaultAddr is the listen address used when none is given.
const DefaultAddr = ":7777"

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second

	// maxRequestBytes leaves room for JSON escaping around a maximum-size document.
	maxRequestBytes = 4 * document.MaxSourceSize
)

// CompileRequest is the body of a compile API call.
type CompileRequest struct {
	Text *string `json:"text"`
}

// CompileResponse is the compile API's reply.
type CompileResponse struct {
	Success      bool   `json:"success"`
	Title        string `json:"title,omitempty"`
	Text         string `json:"text,omitempty"`
	ErrorMessage string `json:"error_message"`
}

var invalidRequest = CompileResponse{Success: false, ErrorMessage: "Invalid request"}

// Server routes requests to the scratch and compile handlers.
type Server struct {
	mux *http.ServeMux
	log *slog.Logger
}

// New creates a server with all routes registered.
func New() *Server {
	s := &Server{
		mux: http.NewServeMux(),
		log: logger.WithComponent("server"),
	}
	s.mux.Handle(scratch.Path, http.HandlerFunc(s.handleScratch))
	s.mux.Handle(CompilePath, http.HandlerFunc(s.handleCompile))
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)
	s.log.Debug("Request handled",
		"method", r.Method,
		"path", r.URL.Path,
		"status", rec.status,
		"duration", time.Since(start),
	)
}

// handleScratch serves the introductory document, or an empty one when the
// query carries "new".
func (s *Server) handleScratch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	text := scratch.Intro()
	if r.URL.Query().Has("new") {
		text = ""
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, text)
}

// handleCompile compiles the posted text and returns its title and plain text.
// A malformed request is answered with status 200 and success false. Compile
// never fails, so warnings travel in error_message alongside success true.
func (s *Server) handleCompile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req CompileRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil || req.Text == nil {
		s.log.Debug("Rejected compile request", "error", err)
		writeJSON(w, http.StatusOK, invalidRequest)
		return
	}
	if len(*req.Text) > document.MaxSourceSize {
		s.log.Debug("Rejected compile request",
			"error", inkerrors.SourceTooLarge(len(*req.Text), document.MaxSourceSize))
		writeJSON(w, http.StatusOK, invalidRequest)
		return
	}

	compiled := document.Compile(*req.Text)
	writeJSON(w, http.StatusOK, CompileResponse{
		Success:      true,
		Title:        compiled.Title,
		Text:         compiled.PlainText(),
		ErrorMessage: strings.Join(compiled.Warnings, "\n"),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func ListenAndServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           New(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithComponent("server").Info("Listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
