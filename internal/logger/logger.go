// Package logger configures structured logging for the CLI.
package logger

import (
	"io"
	"log/slog"
)

// Setup returns a JSON slog.Logger writing to w at debug level.
// Used when the --debug flag is set; output goes to stderr so it never
// mixes with command output.
func Setup(w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	return slog.New(handler)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
