package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"wikiharvest/internal/model"
)

// createTestReport creates a report with sample data for testing.
func createTestReport() *model.CrawlReport {
	report := model.NewCrawlReport("Terraria", 1, time.Second)
	report.StartedAt = time.Date(2026, 2, 14, 10, 30, 0, 0, time.UTC)
	report.Duration = 3 * time.Second
	report.Record(model.NodeResult{
		Identifier:  "Terraria",
		Depth:       0,
		Outcome:     model.OutcomeProcessed,
		WordsMerged: 120,
	})
	report.Record(model.NodeResult{
		Identifier: "Missing_Page",
		Depth:      1,
		Outcome:    model.OutcomeNotFound,
		Detail:     "page not found",
	})
	report.Record(model.NodeResult{
		Identifier:  "NPCs",
		Depth:       1,
		Outcome:     model.OutcomeProcessed,
		WordsMerged: 85,
	})
	return report
}

// TestSimpleWriter tests the human-readable report writer.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes report header", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "CRAWL REPORT") {
			t.Error("expected output to contain header")
		}
		if !strings.Contains(output, "Terraria") {
			t.Error("expected output to contain the seed page")
		}
	})

	t.Run("writes outcome summary", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "Processed:     2") {
			t.Error("expected output to contain processed count")
		}
		if !strings.Contains(output, "Not Found:     1") {
			t.Error("expected output to contain not-found count")
		}
	})

	t.Run("lists only failures by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "Missing Page") {
			t.Error("expected failed page in default output")
		}
		if strings.Contains(output, "NPCs") {
			t.Error("processed pages should be omitted in default output")
		}
	})

	t.Run("verbose lists every page", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithVerbose(true))

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{"Terraria", "Missing Page", "NPCs"} {
			if !strings.Contains(output, want) {
				t.Errorf("verbose output missing page %q", want)
			}
		}
	})
}

// TestJSONWriter tests the JSON report writer.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("produces valid JSON round trip", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)
		want := createTestReport()

		if _, err := w.Write(want); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var got model.CrawlReport
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if got.Seed != want.Seed {
			t.Errorf("seed = %s, want %s", got.Seed, want.Seed)
		}
		if len(got.Results) != 3 {
			t.Errorf("len(results) = %d, want 3", len(got.Results))
		}
	})

	t.Run("pretty print indents output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, WithPrettyPrint())

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\n  ") {
			t.Error("expected indented output")
		}
	})
}

// TestMarkdownWriter tests the Markdown report writer.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes title and tables", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "# Crawl Report: Terraria") {
			t.Error("expected markdown title")
		}
		if !strings.Contains(output, "| Outcome") {
			t.Error("expected outcome summary table")
		}
		if !strings.Contains(output, "`NPCs`") {
			t.Error("expected page table row for NPCs")
		}
	})

	t.Run("includes mermaid pie chart", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "pie") {
			t.Error("expected mermaid pie chart block")
		}
	})
}

// TestMultiWriter tests writing to several destinations at once.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes to all writers", func(t *testing.T) {
		t.Parallel()

		var a, b bytes.Buffer
		mw := NewMultiWriter(NewSimpleWriter(&a), NewJSONWriter(&b))

		if _, err := mw.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.Len() == 0 || b.Len() == 0 {
			t.Error("expected both writers to receive output")
		}
	})

	t.Run("stops on first error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		mw := NewMultiWriter(&failingWriter{}, NewSimpleWriter(&buf))

		if _, err := mw.Write(createTestReport()); err == nil {
			t.Fatal("expected error from failing writer")
		}
		if buf.Len() != 0 {
			t.Error("expected no output after the failing writer")
		}
	})
}

// failingWriter always returns an error.
type failingWriter struct{}

func (f *failingWriter) Write(_ *model.CrawlReport) (int, error) {
	return 0, errors.New("write failed")
}
