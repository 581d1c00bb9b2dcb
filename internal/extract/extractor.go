package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Extraction failures. These are "no data" conditions, not fatal errors;
// callers log them and carry on.
var (
	// ErrNoContent is returned when the article content area is missing.
	ErrNoContent = errors.New("could not locate article content")

	// ErrNoSummary is returned when no usable summary paragraph exists.
	ErrNoSummary = errors.New("no valid summary paragraph found")

	// ErrTableNotFound is returned when the requested table index is out
	// of range. Table indices are 1-based.
	ErrTableNotFound = errors.New("table not found")
)

// Extractor extracts structured content from wiki page markup.
//
// Design decision: We parse with goquery rather than walking x/net/html
// nodes by hand because:
//  1. Selector-level queries match how the content area is addressed
//  2. It tolerates the malformed HTML real wikis serve
//  3. The underlying nodes remain *html.Node, so raw markup can still be
//     rendered where needed (table extraction)
type Extractor struct{}

// NewExtractor creates an Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// content returns the article content selection for a parsed document.
func (e *Extractor) content(doc *goquery.Document) (*goquery.Selection, error) {
	sel := doc.Find("div.mw-parser-output")
	if sel.Length() == 0 {
		// Fallback for wikis that only mark the outer content container
		sel = doc.Find("#mw-content-text")
	}
	if sel.Length() == 0 {
		return nil, ErrNoContent
	}
	return sel.First(), nil
}

func parse(markup string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("failed to parse markup: %w", err)
	}
	return doc, nil
}

// Summary returns the first meaningful paragraph of the article as plain
// text, with tags stripped and whitespace collapsed. Only direct children
// of the content area are considered so infobox paragraphs are skipped.
func (e *Extractor) Summary(markup string) (string, error) {
	doc, err := parse(markup)
	if err != nil {
		return "", err
	}

	content, err := e.content(doc)
	if err != nil {
		return "", err
	}

	var summary string
	content.ChildrenFiltered("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		text := collapseWhitespace(p.Text())
		if len(text) > 1 {
			summary = text
			return false
		}
		return true
	})

	if summary == "" {
		return "", ErrNoSummary
	}
	return summary, nil
}

// Table returns the raw markup of the nth table in the article, 1-based.
// An index of 0, a negative index, or an index beyond the number of tables
// yields ErrTableNotFound.
func (e *Extractor) Table(markup string, n int) (string, error) {
	doc, err := parse(markup)
	if err != nil {
		return "", err
	}

	tables := doc.Find("table")
	if n < 1 || n > tables.Length() {
		return "", fmt.Errorf("table %d of %d: %w", n, tables.Length(), ErrTableNotFound)
	}

	node := tables.Get(n - 1)
	var sb strings.Builder
	if err := html.Render(&sb, node); err != nil {
		return "", fmt.Errorf("failed to render table %d: %w", n, err)
	}
	return sb.String(), nil
}

// TableRows parses table markup into a rows-by-cells text matrix.
// Both header (th) and data (td) cells are included in document order.
func (e *Extractor) TableRows(tableMarkup string) ([][]string, error) {
	doc, err := parse(tableMarkup)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0)
	doc.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := make([]string, 0)
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, collapseWhitespace(cell.Text()))
		})
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	})

	return rows, nil
}

// FullText returns the article body as plain text. A space separates text
// from adjacent elements so words never merge across tag boundaries
// ("end.Start"), and whitespace runs are collapsed.
func (e *Extractor) FullText(markup string) (string, error) {
	doc, err := parse(markup)
	if err != nil {
		return "", err
	}

	content, err := e.content(doc)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, node := range content.Nodes {
		writeText(&sb, node)
	}

	return collapseWhitespace(sb.String()), nil
}

// writeText appends the text nodes under n, separated by spaces.
// Script and style bodies are skipped.
func writeText(sb *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		sb.WriteString(" ")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(sb, c)
	}
}

// RawLinks returns the href attribute values of every anchor inside the
// article content area, in document order and unfiltered. Filtering into
// page identifiers is FilterLinks' job.
func (e *Extractor) RawLinks(markup string) ([]string, error) {
	doc, err := parse(markup)
	if err != nil {
		return nil, err
	}

	content, err := e.content(doc)
	if err != nil {
		return nil, err
	}

	hrefs := make([]string, 0)
	content.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		if href, ok := a.Attr("href"); ok {
			hrefs = append(hrefs, href)
		}
	})

	return hrefs, nil
}

// collapseWhitespace trims the string and squeezes interior whitespace
// runs into single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
