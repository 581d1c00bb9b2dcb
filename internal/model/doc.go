// Package model defines the core data types shared across wikiharvest:
// page identifiers, fetched pages, and crawl reports.
package model
