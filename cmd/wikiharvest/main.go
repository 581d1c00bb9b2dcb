// Package main provides the entry point for the wikiharvest CLI.
//
// wikiharvest scrapes MediaWiki-style wikis: page summaries, tables as
// CSV, word counts, and a polite bounded crawl that accumulates word
// frequencies across linked pages.
//
// Usage:
//
//	wikiharvest summary <phrase>
//	wikiharvest crawl <phrase> --depth 1
//
// See --help for all available options.
package main

// main is the entry point for wikiharvest.
func main() {
	Execute()
}
