// Package clipboard provides text access to the system clipboard.
package clipboard

import (
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/inkwell/internal/errors"
	"github.com/zhubert/inkwell/internal/logger"
)

var (
	initOnce sync.Once
	initErr  error
)

// Init initializes the clipboard. Must be called before other functions.
// This is safe to call multiple times.
func Init() error {
	initOnce.Do(func() {
		log := logger.WithComponent("clipboard")
		if err := clipboard.Init(); err != nil {
			log.Warn("Failed to initialize", "error", err)
			initErr = errors.E(errors.Op("clipboard.Init"), errors.KindIO, err)
			return
		}
		log.Debug("Initialized successfully")
	})
	return initErr
}

// WriteText replaces the clipboard contents with text.
func WriteText(text string) error {
	if err := Init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	logger.WithComponent("clipboard").Debug("Wrote text", "bytes", len(text))
	return nil
}
