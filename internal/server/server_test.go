package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/zhubert/inkwell/internal/document"
	"github.com/zhubert/inkwell/internal/scratch"
)

func TestScratch(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"intro", "/scratch", scratch.Intro()},
		{"new document", "/scratch?new", ""},
		{"new with value", "/scratch?new=1", ""},
	}

	srv := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
				t.Errorf("Content-Type = %q, want text/plain", ct)
			}
			if rec.Body.String() != tt.want {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.want)
			}
		})
	}
}

func TestScratch_MethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	New().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/scratch", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func postCompile(t *testing.T, body string) (int, CompileResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	New().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, CompilePath, strings.NewReader(body)))

	var resp CompileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v (%q)", err, rec.Body.String())
	}
	return rec.Code, resp
}

func TestCompile(t *testing.T) {
	code, resp := postCompile(t, `{"text":"= Notes\n\nhello *world*"}`)

	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if !resp.Success {
		t.Error("Success = false, want true")
	}
	if resp.Title != "Notes" {
		t.Errorf("Title = %q, want Notes", resp.Title)
	}
	want := document.Compile("= Notes\n\nhello *world*").PlainText()
	if resp.Text != want {
		t.Errorf("Text = %q, want %q", resp.Text, want)
	}
	if resp.ErrorMessage != "" {
		t.Errorf("ErrorMessage = %q, want empty", resp.ErrorMessage)
	}
}

func TestCompile_Warnings(t *testing.T) {
	_, resp := postCompile(t, `{"text":"----\nunterminated"}`)

	if !resp.Success {
		t.Error("warnings should not fail the request")
	}
	if !strings.Contains(resp.ErrorMessage, "unterminated listing block") {
		t.Errorf("ErrorMessage = %q, want the warning", resp.ErrorMessage)
	}
}

func TestCompile_EmptyText(t *testing.T) {
	code, resp := postCompile(t, `{"text":""}`)

	if code != http.StatusOK || !resp.Success {
		t.Errorf("empty text should compile: status %d, %+v", code, resp)
	}
}

func TestCompile_InvalidRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `hello`},
		{"missing text", `{}`},
		{"wrong type", `{"text":42}`},
		{"null text", `{"text":null}`},
		{"too large", `{"text":"` + strings.Repeat("a", document.MaxSourceSize+1) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, resp := postCompile(t, tt.body)

			if code != http.StatusOK {
				t.Errorf("status = %d, want 200", code)
			}
			if resp.Success || resp.ErrorMessage != "Invalid request" {
				t.Errorf("response = %+v, want invalid request", resp)
			}
		})
	}
}

func TestCompile_MethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	New().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, CompilePath, nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestServer_OverHTTP(t *testing.T) {
	ts := httptest.NewServer(New())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/scratch")
	if err != nil {
		t.Fatalf("GET /scratch: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if string(body) != scratch.Intro() {
		t.Error("served scratch document does not match the embedded intro")
	}
}

func TestListenAndServe_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ListenAndServe(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe() = %v, want nil after cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe did not return after cancel")
	}
}
