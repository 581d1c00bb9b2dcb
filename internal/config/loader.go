package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".wikiharvest"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the YAML configuration file format. All fields are optional;
// unset fields keep their defaults or CLI-flag values.
//
//	base_url: https://terraria.wiki.gg/wiki/
//	article_prefix: /wiki/
//	user_agent: my-research-bot/1.0
//	store: word-counts.json
//	database_dir: /var/lib/wikiharvest
//	crawl_wait: 2s
type File struct {
	// BaseURL overrides the wiki article URL prefix.
	BaseURL string `yaml:"base_url"`

	// ArticlePrefix overrides the internal-link href prefix.
	ArticlePrefix string `yaml:"article_prefix"`

	// UserAgent overrides the HTTP User-Agent header.
	UserAgent string `yaml:"user_agent"`

	// Store overrides the word-count store file path.
	Store string `yaml:"store"`

	// DatabaseDir overrides the crawl history database directory.
	DatabaseDir string `yaml:"database_dir"`

	// CrawlWait overrides the delay between crawl requests.
	// Uses Go duration syntax ("500ms", "2s").
	CrawlWait string `yaml:"crawl_wait"`
}

// LoadConfigFile loads configuration overrides from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// Apply copies the file's non-empty fields onto the config.
// CLI flags are applied after this, so explicit flags win over the file.
func (f *File) Apply(c *Config) error {
	if f.BaseURL != "" {
		c.BaseURL = f.BaseURL
	}
	if f.ArticlePrefix != "" {
		c.ArticlePrefix = f.ArticlePrefix
	}
	if f.UserAgent != "" {
		c.UserAgent = f.UserAgent
	}
	if f.Store != "" {
		c.StorePath = f.Store
	}
	if f.DatabaseDir != "" {
		c.DBDir = f.DatabaseDir
	}
	if f.CrawlWait != "" {
		d, err := time.ParseDuration(f.CrawlWait)
		if err != nil {
			return fmt.Errorf("invalid crawl_wait in config file: %w", err)
		}
		c.CrawlWait = d
	}
	return nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .wikiharvest in the current directory
// 3. Look for .wikiharvest in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
