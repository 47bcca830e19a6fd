// Package logger provides the hook's append-only debug log.
package logger

import (
	"log/slog"
	"os"
)

// New returns a debug logger appending to path. When enabled is false the
// logger discards everything.
func New(path string, enabled bool) *slog.Logger {
	if !enabled || path == "" {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(&appendWriter{path: path}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// appendWriter opens, appends to and closes the file on every write.
// Write never fails: logging must not affect the hook's decision.
type appendWriter struct {
	path string
}

func (w *appendWriter) Write(p []byte) (int, error) {
	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return len(p), nil
	}
	defer f.Close()
	_, _ = f.Write(p)
	return len(p), nil
}
