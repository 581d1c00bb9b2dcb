package model

import "strings"

// PageIdentifier is the normalized key identifying a wiki article.
// Spaces are mapped to underscores, matching MediaWiki URL conventions,
// so "Moon Lord" and "Moon_Lord" refer to the same page. The identifier
// doubles as the crawl queue payload and the word-count store lookup key.
type PageIdentifier string

// NewPageIdentifier normalizes a phrase into a PageIdentifier.
// Surrounding whitespace is dropped and interior spaces become underscores.
func NewPageIdentifier(phrase string) PageIdentifier {
	return PageIdentifier(strings.ReplaceAll(strings.TrimSpace(phrase), " ", "_"))
}

// String returns the identifier as a plain string.
func (id PageIdentifier) String() string {
	return string(id)
}

// Display returns the identifier in human-readable form, with underscores
// mapped back to spaces ("Moon_Lord" -> "Moon Lord").
func (id PageIdentifier) Display() string {
	return strings.ReplaceAll(string(id), "_", " ")
}
