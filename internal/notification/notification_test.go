package notification

import (
	"errors"
	"testing"
)

// mockNotification records calls to the notification function
type mockNotification struct {
	calls []struct {
		title   string
		message string
	}
	err error
}

func (m *mockNotification) notify(title, message string, _ any) error {
	m.calls = append(m.calls, struct {
		title   string
		message string
	}{title, message})
	return m.err
}

func TestSend(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		message     string
		mockErr     error
		expectError bool
	}{
		{
			name:    "successful notification",
			title:   "Test Title",
			message: "Test Message",
		},
		{
			name:        "notification error",
			title:       "Test Title",
			message:     "Test Message",
			mockErr:     errors.New("notification failed"),
			expectError: true,
		},
		{
			name:    "empty title",
			title:   "",
			message: "Message with empty title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{err: tt.mockErr}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			err := Send(tt.title, tt.message)

			if tt.expectError && err == nil {
				t.Error("expected error but got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}
			if mock.calls[0].title != tt.title || mock.calls[0].message != tt.message {
				t.Errorf("call = %+v, want %q/%q", mock.calls[0], tt.title, tt.message)
			}
		})
	}
}

func TestLoadFailed(t *testing.T) {
	tests := []struct {
		name            string
		source          string
		expectedMessage string
	}{
		{"file", "notes.adoc", "Could not open notes.adoc"},
		{"url", "https://example.com/doc", "Could not open https://example.com/doc"},
		{"scratch", "", "Could not open the scratch document"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			if err := LoadFailed(tt.source); err != nil {
				t.Fatalf("LoadFailed: %v", err)
			}
			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}
			if mock.calls[0].title != "Inkwell" {
				t.Errorf("title = %q, want Inkwell", mock.calls[0].title)
			}
			if mock.calls[0].message != tt.expectedMessage {
				t.Errorf("message = %q, want %q", mock.calls[0].message, tt.expectedMessage)
			}
		})
	}
}

func TestResetNotifier(t *testing.T) {
	mock := &mockNotification{}
	SetNotifier(mock.notify)
	ResetNotifier()

	// The default notifier is beeep; a replaced one must no longer be called
	mu.Lock()
	defer mu.Unlock()
	if notifier == nil {
		t.Fatal("ResetNotifier left no notifier")
	}
	if len(mock.calls) != 0 {
		t.Errorf("mock called %d times after reset", len(mock.calls))
	}
}
