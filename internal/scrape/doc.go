// Package scrape composes a page fetcher and a content extractor into the
// single fetch-and-extract capability the CLI commands and the crawl
// engine consume.
package scrape
