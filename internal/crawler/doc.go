// Package crawler implements the bounded breadth-first crawl over wiki
// pages: depth limiting, visited-page deduplication, fixed pacing between
// requests, and per-page word aggregation into the durable store.
package crawler
