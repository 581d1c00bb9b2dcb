package scrape

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wikiharvest/internal/fetch"
)

// writePage writes a fixture page into dir for local-mode fetching.
func writePage(t *testing.T, dir, id, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, id+".html"), []byte(body), 0600); err != nil {
		t.Fatalf("failed to write fixture %s: %v", id, err)
	}
}

// TestScraper tests the composed fetch-and-extract capability in local mode.
func TestScraper(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writePage(t, dir, "Terraria", `
		<div class="mw-parser-output">
			<p><b>Terraria</b> is a land of adventure!</p>
			<a href="/wiki/Moon_Lord">Moon Lord</a>
			<a href="/wiki/File:Map.png">Map</a>
			<a href="/wiki/King_Slime">King Slime</a>
		</div>`)

	s := New(fetch.NewLocalFetcher(dir))
	ctx := context.Background()

	t.Run("summary", func(t *testing.T) {
		t.Parallel()

		got, err := s.Summary(ctx, "Terraria")
		if err != nil {
			t.Fatalf("Summary() error = %v", err)
		}
		if got != "Terraria is a land of adventure!" {
			t.Errorf("Summary() = %q", got)
		}
	})

	t.Run("internal links are filtered in order", func(t *testing.T) {
		t.Parallel()

		links, err := s.InternalLinks(ctx, "Terraria")
		if err != nil {
			t.Fatalf("InternalLinks() error = %v", err)
		}
		if len(links) != 2 || links[0] != "Moon_Lord" || links[1] != "King_Slime" {
			t.Errorf("InternalLinks() = %v, want [Moon_Lord King_Slime]", links)
		}
	})

	t.Run("page returns text and links from one fetch", func(t *testing.T) {
		t.Parallel()

		text, links, err := s.Page(ctx, "Terraria")
		if err != nil {
			t.Fatalf("Page() error = %v", err)
		}
		if !strings.Contains(text, "land of adventure") {
			t.Errorf("Page() text = %q", text)
		}
		if len(links) != 2 {
			t.Errorf("Page() links = %v, want 2 entries", links)
		}
	})

	t.Run("missing page propagates ErrNotFound", func(t *testing.T) {
		t.Parallel()

		if _, _, err := s.Page(ctx, "Missing"); !errors.Is(err, fetch.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

// TestScraperCustomPrefix tests link filtering with a non-default prefix.
func TestScraperCustomPrefix(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writePage(t, dir, "Main", `
		<div class="mw-parser-output">
			<p>Main page.</p>
			<a href="/w/Article_One">one</a>
			<a href="/wiki/Other">other</a>
		</div>`)

	s := New(fetch.NewLocalFetcher(dir), WithArticlePrefix("/w/"))
	links, err := s.InternalLinks(context.Background(), "Main")
	if err != nil {
		t.Fatalf("InternalLinks() error = %v", err)
	}
	if len(links) != 1 || links[0] != "Article_One" {
		t.Errorf("InternalLinks() = %v, want [Article_One]", links)
	}
}
