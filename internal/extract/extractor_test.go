package extract

import (
	"errors"
	"strings"
	"testing"
)

// samplePage mimics the structure of a MediaWiki article page.
const samplePage = `
<html>
	<body>
		<div class="mw-parser-output">
			<p>This is the <b>summary</b> paragraph.</p>
			<p>This is the second paragraph.</p>

			<table>
				<tr><td>Table 1 Data</td></tr>
			</table>

			<table>
				<tr><th>Name</th><th>Rarity</th></tr>
				<tr><td>Meowmere</td><td>Red</td></tr>
				<tr><td>Terrarian</td><td>Red</td></tr>
			</table>

			<a href="/wiki/Valid_Link">Valid</a>
			<a href="https://google.com">External</a>
			<a href="/wiki/File:Image.png">File</a>
			<a href="/wiki/Talk:Discussion">Talk</a>
		</div>
	</body>
</html>`

// TestSummary tests first-paragraph extraction.
func TestSummary(t *testing.T) {
	t.Parallel()

	e := NewExtractor()

	t.Run("strips tags from first paragraph", func(t *testing.T) {
		t.Parallel()

		got, err := e.Summary(samplePage)
		if err != nil {
			t.Fatalf("Summary() error = %v", err)
		}
		if got != "This is the summary paragraph." {
			t.Errorf("Summary() = %q, want %q", got, "This is the summary paragraph.")
		}
	})

	t.Run("skips empty paragraphs", func(t *testing.T) {
		t.Parallel()

		markup := `<div class="mw-parser-output"><p>   </p><p>Real text here.</p></div>`
		got, err := e.Summary(markup)
		if err != nil {
			t.Fatalf("Summary() error = %v", err)
		}
		if got != "Real text here." {
			t.Errorf("Summary() = %q, want %q", got, "Real text here.")
		}
	})

	t.Run("collapses whitespace inside anchors and bold text", func(t *testing.T) {
		t.Parallel()

		markup := `<div class="mw-parser-output">
			<p>
				<b>Terraria</b> is a land of adventure! <a href="#">A land of mystery!</a>
			</p>
		</div>`
		got, err := e.Summary(markup)
		if err != nil {
			t.Fatalf("Summary() error = %v", err)
		}
		want := "Terraria is a land of adventure! A land of mystery!"
		if got != want {
			t.Errorf("Summary() = %q, want %q", got, want)
		}
	})

	t.Run("missing content div", func(t *testing.T) {
		t.Parallel()

		_, err := e.Summary(`<html><body><div>No parser output here</div></body></html>`)
		if !errors.Is(err, ErrNoContent) {
			t.Errorf("expected ErrNoContent, got %v", err)
		}
	})

	t.Run("content div without usable paragraph", func(t *testing.T) {
		t.Parallel()

		_, err := e.Summary(`<div class="mw-parser-output"><table><tr><td>x</td></tr></table></div>`)
		if !errors.Is(err, ErrNoSummary) {
			t.Errorf("expected ErrNoSummary, got %v", err)
		}
	})

	t.Run("falls back to mw-content-text", func(t *testing.T) {
		t.Parallel()

		markup := `<div id="mw-content-text"><p>Fallback summary.</p></div>`
		got, err := e.Summary(markup)
		if err != nil {
			t.Fatalf("Summary() error = %v", err)
		}
		if got != "Fallback summary." {
			t.Errorf("Summary() = %q, want %q", got, "Fallback summary.")
		}
	})
}

// TestTable tests 1-based table extraction.
func TestTable(t *testing.T) {
	t.Parallel()

	e := NewExtractor()

	t.Run("returns only the requested table", func(t *testing.T) {
		t.Parallel()

		got, err := e.Table(samplePage, 2)
		if err != nil {
			t.Fatalf("Table() error = %v", err)
		}
		if !strings.Contains(got, "Meowmere") {
			t.Errorf("table 2 should contain Meowmere, got %q", got)
		}
		if strings.Contains(got, "Table 1 Data") {
			t.Errorf("table 2 must not contain table 1 content")
		}
	})

	t.Run("index zero is out of range", func(t *testing.T) {
		t.Parallel()

		if _, err := e.Table(samplePage, 0); !errors.Is(err, ErrTableNotFound) {
			t.Errorf("expected ErrTableNotFound for index 0, got %v", err)
		}
	})

	t.Run("index beyond count is out of range", func(t *testing.T) {
		t.Parallel()

		if _, err := e.Table(samplePage, 3); !errors.Is(err, ErrTableNotFound) {
			t.Errorf("expected ErrTableNotFound for index 3, got %v", err)
		}
	})
}

// TestTableRows tests cell matrix extraction.
func TestTableRows(t *testing.T) {
	t.Parallel()

	e := NewExtractor()

	markup, err := e.Table(samplePage, 2)
	if err != nil {
		t.Fatalf("Table() error = %v", err)
	}

	rows, err := e.TableRows(markup)
	if err != nil {
		t.Fatalf("TableRows() error = %v", err)
	}

	want := [][]string{
		{"Name", "Rarity"},
		{"Meowmere", "Red"},
		{"Terrarian", "Red"},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i := range want {
		for j := range want[i] {
			if rows[i][j] != want[i][j] {
				t.Errorf("rows[%d][%d] = %q, want %q", i, j, rows[i][j], want[i][j])
			}
		}
	}
}

// TestFullText tests separator-aware body text extraction.
func TestFullText(t *testing.T) {
	t.Parallel()

	e := NewExtractor()

	t.Run("inserts separators across tag boundaries", func(t *testing.T) {
		t.Parallel()

		markup := `<div class="mw-parser-output"><p>The end.</p><p>Start again.</p></div>`
		got, err := e.FullText(markup)
		if err != nil {
			t.Fatalf("FullText() error = %v", err)
		}
		if got != "The end. Start again." {
			t.Errorf("FullText() = %q, want %q", got, "The end. Start again.")
		}
	})

	t.Run("skips script and style bodies", func(t *testing.T) {
		t.Parallel()

		markup := `<div class="mw-parser-output"><p>Visible</p><script>var hidden = 1;</script></div>`
		got, err := e.FullText(markup)
		if err != nil {
			t.Fatalf("FullText() error = %v", err)
		}
		if strings.Contains(got, "hidden") {
			t.Errorf("script content leaked into text: %q", got)
		}
	})

	t.Run("missing content div", func(t *testing.T) {
		t.Parallel()

		if _, err := e.FullText(`<html><body></body></html>`); !errors.Is(err, ErrNoContent) {
			t.Errorf("expected ErrNoContent, got %v", err)
		}
	})
}

// TestRawLinks tests unfiltered href collection.
func TestRawLinks(t *testing.T) {
	t.Parallel()

	e := NewExtractor()

	hrefs, err := e.RawLinks(samplePage)
	if err != nil {
		t.Fatalf("RawLinks() error = %v", err)
	}

	want := []string{"/wiki/Valid_Link", "https://google.com", "/wiki/File:Image.png", "/wiki/Talk:Discussion"}
	if len(hrefs) != len(want) {
		t.Fatalf("got %d hrefs, want %d: %v", len(hrefs), len(want), hrefs)
	}
	for i := range want {
		if hrefs[i] != want[i] {
			t.Errorf("hrefs[%d] = %q, want %q", i, hrefs[i], want[i])
		}
	}
}
