package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"wikiharvest/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// verbose enables the full per-node listing instead of failures only.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables the full per-node listing.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		verbose:    false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the crawl report in human-readable format.
func (w *SimpleWriter) Write(report *model.CrawlReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeSummary(&sb, report)
	w.writeNodes(&sb, report)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with run information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.CrawlReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                          CRAWL REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Seed Page:  %s\n", report.Seed.Display()))
	sb.WriteString(fmt.Sprintf("Run ID:     %s\n", report.RunID))
	sb.WriteString(fmt.Sprintf("Max Depth:  %d\n", report.MaxDepth))
	sb.WriteString(fmt.Sprintf("Pace:       %s\n", report.Pace))
	sb.WriteString(fmt.Sprintf("Started:    %s\n", report.StartedAt.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Duration:   %s\n", report.Duration.Round(time.Millisecond)))
	sb.WriteString("\n")
}

// writeSummary writes the outcome counts.
func (w *SimpleWriter) writeSummary(sb *strings.Builder, report *model.CrawlReport) {
	sb.WriteString("SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  Processed:     %d\n", report.Processed()))
	sb.WriteString(fmt.Sprintf("  Not Found:     %d\n", report.NotFound()))
	sb.WriteString(fmt.Sprintf("  Fetch Failed:  %d\n", report.FetchFailed()))
	sb.WriteString("\n")
}

// writeNodes writes the per-node listing. In non-verbose mode only
// failed nodes are listed.
func (w *SimpleWriter) writeNodes(sb *strings.Builder, report *model.CrawlReport) {
	if w.verbose {
		sb.WriteString("PAGES\n")
	} else {
		if report.Failed() == 0 {
			return
		}
		sb.WriteString("FAILURES\n")
	}
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")

	for _, res := range report.Results {
		if !w.verbose && res.Outcome == model.OutcomeProcessed {
			continue
		}
		sb.WriteString(fmt.Sprintf("  [depth %d] %-30s %s", res.Depth, res.Identifier.Display(), res.Outcome))
		if res.Outcome == model.OutcomeProcessed {
			sb.WriteString(fmt.Sprintf(" (%d distinct words)", res.WordsMerged))
		} else if res.Detail != "" {
			sb.WriteString(" - " + res.Detail)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}
