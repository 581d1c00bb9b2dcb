package extract

import (
	"strings"

	"wikiharvest/internal/model"
)

// DefaultArticlePrefix is the internal-article path prefix used by
// MediaWiki-style sites.
const DefaultArticlePrefix = "/wiki/"

// FilterLinks reduces raw href values to same-site article identifiers.
//
// An href is accepted iff it starts with the article path prefix and the
// remainder contains no ":" namespace separator, which excludes File:,
// Talk:, Special: and other non-article pages. Accepted hrefs have the
// prefix stripped to yield the bare identifier.
//
// Output preserves first-appearance order and keeps duplicates; visited-set
// deduplication belongs to the crawl engine, not this layer.
func FilterLinks(rawHrefs []string, prefix string) []model.PageIdentifier {
	if prefix == "" {
		prefix = DefaultArticlePrefix
	}

	ids := make([]model.PageIdentifier, 0, len(rawHrefs))
	for _, href := range rawHrefs {
		if !strings.HasPrefix(href, prefix) {
			continue
		}
		rest := strings.TrimPrefix(href, prefix)
		if rest == "" || strings.Contains(rest, ":") {
			continue
		}
		ids = append(ids, model.PageIdentifier(rest))
	}

	return ids
}
