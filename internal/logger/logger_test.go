package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupTestLogger creates a temp log file and initializes the logger with it.
// Returns the path to the temp file and a cleanup function.
func setupTestLogger(t *testing.T) (string, func()) {
	t.Helper()
	Reset()

	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}

	return logPath, func() {
		Reset()
	}
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestInit_RecordsPath(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	if got := Path(); got != logPath {
		t.Errorf("Path() = %q, want %q", got, logPath)
	}
}

func TestInit_BadPath(t *testing.T) {
	Reset()
	defer Reset()

	err := Init(filepath.Join(t.TempDir(), "missing", "dir", "log.log"))
	if err == nil {
		t.Error("Init should fail when the directory does not exist")
	}
}

func TestDefaultLevel_DropsDebug(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	log := WithComponent("test")
	log.Debug("debug-marker")
	log.Info("info-marker")
	log.Warn("warn-marker", "n", 1)

	content := readLog(t, logPath)
	if strings.Contains(content, "debug-marker") {
		t.Error("Debug messages should be dropped at the default level")
	}
	if !strings.Contains(content, "info-marker") {
		t.Error("Info message should be written")
	}
	if !strings.Contains(content, "warn-marker") || !strings.Contains(content, "n=1") {
		t.Error("Warn message should be written with its attributes")
	}
}

func TestSetDebug(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	log := WithComponent("test")
	SetDebug(true)
	log.Debug("visible-debug")
	SetDebug(false)
	log.Debug("hidden-debug")

	content := readLog(t, logPath)
	if !strings.Contains(content, "visible-debug") {
		t.Error("Debug message should be written when debug is enabled")
	}
	if strings.Contains(content, "hidden-debug") {
		t.Error("Debug message should be dropped when debug is disabled")
	}
}

func TestSetDebug_BeforeInit(t *testing.T) {
	Reset()
	defer Reset()

	SetDebug(true)
	logPath := filepath.Join(t.TempDir(), "early.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	WithComponent("test").Debug("early-debug")

	if !strings.Contains(readLog(t, logPath), "early-debug") {
		t.Error("Debug level set before Init should survive initialization")
	}
}

func TestWithComponent(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	WithComponent("loader").Info("component message")

	content := readLog(t, logPath)
	if !strings.Contains(content, "component=loader") {
		t.Errorf("Log should carry the component attribute, got: %s", content)
	}
}

func TestWithSession(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	WithSession("abc-123").Info("session message")

	content := readLog(t, logPath)
	if !strings.Contains(content, "sessionID=abc-123") {
		t.Errorf("Log should carry the session attribute, got: %s", content)
	}
}

func TestLog_Concurrent(t *testing.T) {
	_, cleanup := setupTestLogger(t)
	defer cleanup()

	done := make(chan bool)

	for i := 0; i < 10; i++ {
		go func(n int) {
			for j := 0; j < 100; j++ {
				WithComponent("test").Info("concurrent test", "n", n, "j", j)
			}
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestReset(t *testing.T) {
	tmpDir := t.TempDir()
	logPath1 := filepath.Join(tmpDir, "log1.log")
	Reset()
	if err := Init(logPath1); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}

	WithComponent("test").Info("message to log1")

	// Reset and reinitialize to a different path
	Reset()

	logPath2 := filepath.Join(tmpDir, "log2.log")
	if err := Init(logPath2); err != nil {
		t.Fatalf("Failed to reinit logger: %v", err)
	}

	WithComponent("test").Info("message to log2")

	content1 := readLog(t, logPath1)
	if !strings.Contains(content1, "message to log1") {
		t.Error("log1 should contain 'message to log1'")
	}
	if strings.Contains(content1, "message to log2") {
		t.Error("log1 should NOT contain 'message to log2'")
	}

	content2 := readLog(t, logPath2)
	if !strings.Contains(content2, "message to log2") {
		t.Error("log2 should contain 'message to log2'")
	}

	Reset()
}

func TestClose(t *testing.T) {
	_, cleanup := setupTestLogger(t)
	defer cleanup()

	Close()
	// Logging after close must not panic
	WithComponent("test").Info("after close")
}
