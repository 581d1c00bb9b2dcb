// Package extract pulls structured content out of wiki page markup:
// the summary paragraph, tables, full article text, and link candidates.
//
// All extraction is scoped to the MediaWiki content area
// (div.mw-parser-output, falling back to #mw-content-text) so navigation
// chrome never leaks into results.
package extract
