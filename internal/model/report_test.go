package model

import (
	"testing"
	"time"
)

// TestNewPageIdentifier tests phrase normalization.
func TestNewPageIdentifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		phrase string
		want   PageIdentifier
	}{
		{name: "spaces become underscores", phrase: "Moon Lord", want: "Moon_Lord"},
		{name: "already normalized", phrase: "Moon_Lord", want: "Moon_Lord"},
		{name: "surrounding whitespace trimmed", phrase: "  Eye of Cthulhu ", want: "Eye_of_Cthulhu"},
		{name: "single word", phrase: "Terraria", want: "Terraria"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NewPageIdentifier(tt.phrase); got != tt.want {
				t.Errorf("NewPageIdentifier(%q) = %q, want %q", tt.phrase, got, tt.want)
			}
		})
	}
}

// TestPageIdentifierDisplay tests the reverse mapping back to spaces.
func TestPageIdentifierDisplay(t *testing.T) {
	t.Parallel()

	id := NewPageIdentifier("Moon Lord")
	if got := id.Display(); got != "Moon Lord" {
		t.Errorf("Display() = %q, want %q", got, "Moon Lord")
	}
}

// TestCrawlReportCounters tests outcome counting.
func TestCrawlReportCounters(t *testing.T) {
	t.Parallel()

	report := NewCrawlReport("Terraria", 1, time.Second)
	if report.RunID == "" {
		t.Error("expected a non-empty run ID")
	}

	report.Record(NodeResult{Identifier: "Terraria", Depth: 0, Outcome: OutcomeProcessed, WordsMerged: 10})
	report.Record(NodeResult{Identifier: "Moon_Lord", Depth: 1, Outcome: OutcomeProcessed, WordsMerged: 4})
	report.Record(NodeResult{Identifier: "Missing", Depth: 1, Outcome: OutcomeNotFound, Detail: "page not found"})
	report.Record(NodeResult{Identifier: "Broken", Depth: 1, Outcome: OutcomeFetchFailed, Detail: "connection refused"})

	if got := report.Processed(); got != 2 {
		t.Errorf("Processed() = %d, want 2", got)
	}
	if got := report.Failed(); got != 2 {
		t.Errorf("Failed() = %d, want 2", got)
	}
	if got := report.NotFound(); got != 1 {
		t.Errorf("NotFound() = %d, want 1", got)
	}
	if got := report.FetchFailed(); got != 1 {
		t.Errorf("FetchFailed() = %d, want 1", got)
	}
}

// TestCrawlReportOrderPreserved tests that results keep processing order.
func TestCrawlReportOrderPreserved(t *testing.T) {
	t.Parallel()

	report := NewCrawlReport("A", 1, 0)
	for _, id := range []PageIdentifier{"A", "B", "C"} {
		report.Record(NodeResult{Identifier: id, Outcome: OutcomeProcessed})
	}

	want := []PageIdentifier{"A", "B", "C"}
	for i, res := range report.Results {
		if res.Identifier != want[i] {
			t.Errorf("Results[%d].Identifier = %q, want %q", i, res.Identifier, want[i])
		}
	}
}
