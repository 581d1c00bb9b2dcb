package log

import (
	"io"
	"log/slog"
)

// NewLogger creates a text logger for terminal output.
// By default only warnings and errors are shown; verbose mode enables
// per-page debug output.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewTrimHandler(slog.NewTextHandler(w, handlerOptions(verbose))))
}

// NewJSONLogger creates a JSON logger for machine-readable output.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewTrimHandler(slog.NewJSONHandler(w, handlerOptions(verbose))))
}

func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{Level: level}
}
