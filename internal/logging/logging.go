// Package logging configures the process logger. A TUI owns the
// terminal, so logs never go to stderr while it runs: --debug writes
// slog output to a file under the XDG state dir, anything else is
// discarded.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Setup installs the default slog logger. With debug off everything is
// discarded; with debug on a text handler writes to logPath at debug
// level. The returned func closes the log file and is safe to call
// either way.
func Setup(debug bool, logPath string) (func(), error) {
	if !debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	return func() { f.Close() }, nil
}
