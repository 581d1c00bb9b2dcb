package log

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"
)

// MaxAttrLen is the longest string attribute value passed through
// unmodified. Wiki page text routinely runs to hundreds of kilobytes; a
// debug line carrying it whole is useless in a terminal.
const MaxAttrLen = 256

// TrimHandler wraps an slog.Handler to truncate oversized attribute
// values. Values longer than MaxAttrLen are cut at a rune boundary and
// suffixed with an ellipsis and the original length.
//
// Design decision: We use a handler wrapper rather than a custom logger
// because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. Call sites stay free of truncation logic
type TrimHandler struct {
	// handler is the underlying slog handler that receives trimmed records.
	handler slog.Handler
}

// NewTrimHandler creates a TrimHandler wrapping the given handler.
// If handler is nil, the returned TrimHandler uses slog.Default().Handler().
func NewTrimHandler(handler slog.Handler) *TrimHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &TrimHandler{handler: handler}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *TrimHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle trims the record's attributes and passes it to the underlying
// handler.
func (h *TrimHandler) Handle(ctx context.Context, r slog.Record) error {
	trimmed := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		trimmed.AddAttrs(trimAttr(a))
		return true
	})

	return h.handler.Handle(ctx, trimmed)
}

// WithAttrs returns a new TrimHandler whose underlying handler has the
// given attributes, trimmed.
func (h *TrimHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Attr, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, trimAttr(a))
	}
	return &TrimHandler{handler: h.handler.WithAttrs(out)}
}

// WithGroup returns a new TrimHandler with the given group name.
func (h *TrimHandler) WithGroup(name string) slog.Handler {
	return &TrimHandler{handler: h.handler.WithGroup(name)}
}

// trimAttr truncates a string attribute value that exceeds MaxAttrLen.
// Group attributes are trimmed recursively; non-string values pass
// through untouched.
func trimAttr(a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindString:
		s := a.Value.String()
		if len(s) <= MaxAttrLen {
			return a
		}
		return slog.String(a.Key, trimString(s))
	case slog.KindGroup:
		group := a.Value.Group()
		trimmed := make([]any, 0, len(group))
		for _, g := range group {
			trimmed = append(trimmed, trimAttr(g))
		}
		return slog.Group(a.Key, trimmed...)
	default:
		return a
	}
}

// trimString cuts s at a rune boundary at or below MaxAttrLen and
// appends the original length so the full size stays visible.
func trimString(s string) string {
	cut := MaxAttrLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return fmt.Sprintf("%s... (%d bytes)", s[:cut], len(s))
}
