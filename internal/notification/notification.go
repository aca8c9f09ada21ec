// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"sync"

	"github.com/gen2brain/beeep"

	"github.com/zhubert/inkwell/internal/logger"
)

// appName is the title of every notification
const appName = "Inkwell"

var (
	mu       sync.Mutex
	notifier = beeep.Notify
)

// SetNotifier replaces the function used to deliver notifications.
func SetNotifier(fn func(title, message string, icon any) error) {
	mu.Lock()
	defer mu.Unlock()
	notifier = fn
}

// ResetNotifier restores delivery through beeep.
func ResetNotifier() {
	mu.Lock()
	defer mu.Unlock()
	notifier = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
// On macOS, it uses terminal-notifier or AppleScript.
// On Linux, it uses D-Bus or notify-send.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("Sending notification", "title", title, "message", message)

	mu.Lock()
	notify := notifier
	mu.Unlock()

	// Empty icon: beeep picks the platform default
	err := notify(title, message, "")
	if err != nil {
		log.Warn("Failed to send notification", "error", err)
	}
	return err
}

// LoadFailed reports that the document from source could not be opened.
func LoadFailed(source string) error {
	if source == "" {
		source = "the scratch document"
	}
	return Send(appName, "Could not open "+source)
}
