package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These values are chosen to be polite toward community-run wikis while
// keeping single-page operations fast.
const (
	// DefaultBaseURL is the article URL prefix of the Terraria wiki.
	// Page identifiers are appended directly to it, so the trailing
	// slash matters.
	DefaultBaseURL = "https://terraria.wiki.gg/wiki/"

	// DefaultArticlePrefix is the href prefix that marks an internal
	// article link on MediaWiki sites. Links whose remainder contains a
	// namespace colon (File:, Category:, ...) are not articles.
	DefaultArticlePrefix = "/wiki/"

	// DefaultTimeout is generous because wiki farms occasionally stall
	// under load. This applies per request, not to a whole crawl.
	DefaultTimeout = 30 * time.Second

	// DefaultCrawlDepth of 1 fetches the seed page plus the pages it
	// links to. Wiki pages commonly carry hundreds of internal links, so
	// every extra level multiplies the page count dramatically.
	DefaultCrawlDepth = 1

	// DefaultCrawlWait is the delay between requests during crawling.
	// This is a politeness setting to avoid hammering the wiki.
	// 1 second is conservative and respectful of server resources.
	DefaultCrawlWait = 1 * time.Second

	// DefaultUserAgent identifies wikiharvest in HTTP requests.
	// Wiki operators block generic or missing User-Agents, and a
	// descriptive one lets them identify scraper traffic in their logs.
	DefaultUserAgent = "wikiharvest/1.0 (word frequency research)"

	// DefaultMaxBodySize limits the maximum response body size to read.
	// 5MB is sufficient for even the largest wiki pages while preventing
	// memory exhaustion from unexpectedly large responses.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB

	// DefaultStoreFile is the word-count store written next to wherever
	// the tool runs. Keeping it in the working directory makes repeated
	// runs against the same project trivially share counts.
	DefaultStoreFile = "word-counts.json"

	// AppName is the application name used for XDG directory paths.
	AppName = "wikiharvest"
)

// Config holds all configuration options for wikiharvest.
// This struct is populated from CLI flags and the optional config file,
// then passed through the application via dependency injection rather
// than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., CrawlConfig, ReportConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant benefit.
type Config struct {
	// BaseURL is the wiki article URL prefix that page identifiers are
	// appended to. Ignored when LocalDir is set.
	BaseURL string

	// ArticlePrefix is the href prefix used to recognize internal
	// article links during extraction.
	ArticlePrefix string

	// LocalDir, when set, reads pages as "<LocalDir>/<identifier>.html"
	// instead of fetching over HTTP. Useful for tests and offline work.
	LocalDir string

	// Timeout is the HTTP timeout for each page request.
	Timeout time.Duration

	// CrawlDepth is the maximum link distance from the seed page.
	// Depth 0 means only fetch the seed page.
	CrawlDepth int

	// CrawlWait is the delay between successive page requests during a
	// crawl. This is a "politeness" setting; lower values may trigger
	// rate limiting on the wiki.
	CrawlWait time.Duration

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string

	// MaxBodySize is the maximum response body size in bytes to read.
	// Responses larger than this are truncated to prevent memory
	// exhaustion. Set to 0 to use the default (5MB).
	MaxBodySize int64

	// StorePath is the word-count store file. Crawl and count merge into
	// it; analyze reads from it.
	StorePath string

	// DBDir is the directory path for storing the SQLite crawl history
	// database. Defaults to the XDG data directory
	// (~/.local/share/wikiharvest on Linux).
	DBDir string

	// SaveToDB indicates whether crawl reports are saved to the history
	// database.
	SaveToDB bool

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport enables JSON crawl report output instead of the
	// human-readable format. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown crawl report output with tables
	// and pie charts. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the crawl report.
	// When set, the report is written to this file instead of stdout.
	ReportFile string

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .wikiharvest in the current
	// directory and then in the user's home directory.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use
// cases. Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because many defaults are non-zero (e.g., timeout, pacing).
// This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		BaseURL:       DefaultBaseURL,
		ArticlePrefix: DefaultArticlePrefix,
		Timeout:       DefaultTimeout,
		CrawlDepth:    DefaultCrawlDepth,
		CrawlWait:     DefaultCrawlWait,
		UserAgent:     DefaultUserAgent,
		MaxBodySize:   DefaultMaxBodySize,
		StorePath:     DefaultStoreFile,
		DBDir:         XDGDataDir(),
		SaveToDB:      true,
	}
}

// XDGDataDir returns the XDG data directory for wikiharvest.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.local/share/wikiharvest
// On macOS: ~/Library/Application Support/wikiharvest
// On Windows: %LOCALAPPDATA%\wikiharvest
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for wikiharvest.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any fetching begins.
//
// We chose to return the first error found rather than collecting all
// errors because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	// Local mode needs no base URL; remote mode does
	if c.LocalDir == "" && c.BaseURL == "" {
		return ErrEmptyBaseURL
	}

	// Timeout must be positive; zero timeout would cause immediate failures
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.CrawlDepth < 0 {
		return ErrInvalidDepth
	}

	// CrawlWait must be non-negative
	if c.CrawlWait < 0 {
		return ErrInvalidWait
	}

	// MaxBodySize must be non-negative; 0 means default
	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}

	if c.StorePath == "" {
		return ErrEmptyStorePath
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
