// Package config provides configuration structures and utilities for
// wikiharvest. It defines the main options for fetching wiki pages,
// crawling, word-count storage, and report generation preferences.
package config
