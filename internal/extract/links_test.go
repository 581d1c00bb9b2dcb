package extract

import (
	"testing"

	"wikiharvest/internal/model"
)

// TestFilterLinks tests the internal-article link predicate.
func TestFilterLinks(t *testing.T) {
	t.Parallel()

	t.Run("accepts only prefixed hrefs without namespaces", func(t *testing.T) {
		t.Parallel()

		hrefs := []string{
			"/wiki/Valid_Link",
			"https://google.com",
			"/wiki/File:X.png",
			"/wiki/Talk:Y",
		}

		got := FilterLinks(hrefs, "/wiki/")
		if len(got) != 1 {
			t.Fatalf("got %d identifiers, want 1: %v", len(got), got)
		}
		if got[0] != model.PageIdentifier("Valid_Link") {
			t.Errorf("got %q, want Valid_Link", got[0])
		}
	})

	t.Run("preserves order and duplicates", func(t *testing.T) {
		t.Parallel()

		hrefs := []string{"/wiki/A", "/wiki/B", "/wiki/A"}
		got := FilterLinks(hrefs, "/wiki/")

		want := []model.PageIdentifier{"A", "B", "A"}
		if len(got) != len(want) {
			t.Fatalf("got %d identifiers, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("rejects bare prefix", func(t *testing.T) {
		t.Parallel()

		if got := FilterLinks([]string{"/wiki/"}, "/wiki/"); len(got) != 0 {
			t.Errorf("bare prefix must be rejected, got %v", got)
		}
	})

	t.Run("empty prefix falls back to default", func(t *testing.T) {
		t.Parallel()

		got := FilterLinks([]string{"/wiki/Zenith"}, "")
		if len(got) != 1 || got[0] != "Zenith" {
			t.Errorf("got %v, want [Zenith]", got)
		}
	})
}
