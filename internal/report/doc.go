// Package report renders crawl reports in multiple output formats:
// human-readable text, JSON for tool integration, and Markdown for
// documentation.
package report
