// Package database provides SQLite-backed storage for crawl run history.
// Each crawl run is recorded with its per-node outcomes so past runs can
// be inspected and compared.
package database
