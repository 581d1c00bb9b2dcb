package database

import (
	"context"
	"testing"
	"time"

	"wikiharvest/internal/model"
)

func testReport(t *testing.T) *model.CrawlReport {
	t.Helper()

	report := model.NewCrawlReport("Terraria", 1, time.Second)
	report.StartedAt = time.Date(2026, 2, 14, 10, 30, 0, 0, time.UTC)
	report.Duration = 3500 * time.Millisecond
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

func TestOpenCreatesDatabase(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	db, err := Open(dir, DefaultOptions())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()
}

func TestOpenWithoutCreate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	opts := Options{CreateIfNotExists: false}
	if _, err := Open(dir, opts); err == nil {
		t.Error("Open() with CreateIfNotExists=false on missing file: want error, got nil")
	}
}

func TestSaveAndGetCrawlReport(t *testing.T) {
	t.Parallel()

	db, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	want := testReport(t)
	if err := db.SaveCrawlReport(ctx, want); err != nil {
		t.Fatalf("SaveCrawlReport() error = %v", err)
	}

	got, err := db.GetCrawlReport(ctx, want.RunID)
	if err != nil {
		t.Fatalf("GetCrawlReport() error = %v", err)
	}
	if got == nil {
		t.Fatal("GetCrawlReport() = nil, want report")
	}

	if got.Seed != want.Seed {
		t.Errorf("Seed = %s, want %s", got.Seed, want.Seed)
	}
	if got.MaxDepth != want.MaxDepth {
		t.Errorf("MaxDepth = %d, want %d", got.MaxDepth, want.MaxDepth)
	}
	if got.Pace != want.Pace {
		t.Errorf("Pace = %v, want %v", got.Pace, want.Pace)
	}
	if got.Duration != want.Duration {
		t.Errorf("Duration = %v, want %v", got.Duration, want.Duration)
	}
	if len(got.Results) != len(want.Results) {
		t.Fatalf("len(Results) = %d, want %d", len(got.Results), len(want.Results))
	}
	for i, res := range got.Results {
		if res != want.Results[i] {
			t.Errorf("Results[%d] = %+v, want %+v", i, res, want.Results[i])
		}
	}
}

func TestGetCrawlReportMissing(t *testing.T) {
	t.Parallel()

	db, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	got, err := db.GetCrawlReport(context.Background(), "no-such-run")
	if err != nil {
		t.Fatalf("GetCrawlReport() error = %v", err)
	}
	if got != nil {
		t.Errorf("GetCrawlReport() = %+v, want nil for unknown run", got)
	}
}

func TestListRuns(t *testing.T) {
	t.Parallel()

	db, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	older := testReport(t)
	older.StartedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := model.NewCrawlReport("Bosses", 2, time.Second)
	newer.StartedAt = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	if err := db.SaveCrawlReport(ctx, older); err != nil {
		t.Fatalf("SaveCrawlReport(older) error = %v", err)
	}
	if err := db.SaveCrawlReport(ctx, newer); err != nil {
		t.Fatalf("SaveCrawlReport(newer) error = %v", err)
	}

	runs, err := db.ListRuns(ctx)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("len(runs) = %d, want 2", len(runs))
	}
	if runs[0].RunID != newer.RunID {
		t.Errorf("runs[0].RunID = %s, want most recent run %s", runs[0].RunID, newer.RunID)
	}
	if runs[0].Seed != "Bosses" {
		t.Errorf("runs[0].Seed = %s, want Bosses", runs[0].Seed)
	}
	if runs[1].Processed != 2 || runs[1].Failed != 1 {
		t.Errorf("runs[1] counts = %d/%d, want 2 processed / 1 failed", runs[1].Processed, runs[1].Failed)
	}
}

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"sqlite default", "2026-02-14 10:30:00", true},
		{"iso 8601 with Z", "2026-02-14T10:30:00Z", true},
		{"rfc3339", "2026-02-14T10:30:00+09:00", true},
		{"garbage", "not a timestamp", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := parseTimestamp(tt.input)
			if tt.valid && got.IsZero() {
				t.Errorf("parseTimestamp(%q) = zero time, want parsed", tt.input)
			}
			if !tt.valid && !got.IsZero() {
				t.Errorf("parseTimestamp(%q) = %v, want zero time", tt.input, got)
			}
		})
	}
}
