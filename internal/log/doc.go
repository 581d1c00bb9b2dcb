// Package log provides the application's logging setup, built on top of
// the standard slog package.
//
// This package extends slog to provide:
//   - Automatic truncation of oversized attribute values (page text,
//     link lists) so debug logging never floods the terminal
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//
// # Usage
//
//	// Create a logger for terminal output
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//
//	logger.Debug("page processed",
//	    "page", "Terraria",
//	    "text", fullText, // truncated if very long
//	)
//
//	// Set as default logger
//	slog.SetDefault(logger)
package log
