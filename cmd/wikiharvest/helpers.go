package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"wikiharvest/internal/config"
	"wikiharvest/internal/fetch"
	"wikiharvest/internal/log"
	"wikiharvest/internal/scrape"
	"wikiharvest/internal/words"
)

// addSourceFlags registers the flags shared by every command that fetches
// wiki pages.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("base-url", "u", config.DefaultBaseURL,
		"Wiki article URL prefix that page names are appended to")
	cmd.Flags().StringP("local-dir", "l", "",
		"Read pages from <dir>/<page>.html instead of fetching over HTTP")
	cmd.Flags().StringP("store", "s", config.DefaultStoreFile,
		"Word-count store file")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .wikiharvest in current or home directory)")
	cmd.Flags().Duration("timeout", config.DefaultTimeout,
		"HTTP timeout per page request")
}

// buildConfig creates a Config from the config file and command flags.
// Flag values override file values; file values override defaults.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// If the user explicitly specified a config file, its absence is an
	// error. Otherwise a missing file just means defaults.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := cf.Apply(cfg); err != nil {
			return nil, err
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	if cmd.Flags().Changed("base-url") {
		if cfg.BaseURL, err = cmd.Flags().GetString("base-url"); err != nil {
			return nil, err
		}
	}
	if cfg.LocalDir, err = cmd.Flags().GetString("local-dir"); err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("store") {
		if cfg.StorePath, err = cmd.Flags().GetString("store"); err != nil {
			return nil, err
		}
	}
	if cfg.Timeout, err = cmd.Flags().GetDuration("timeout"); err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger installs the application logger as the slog default.
func setupLogger(verbose bool) *slog.Logger {
	logger := log.NewLogger(os.Stderr, verbose)
	slog.SetDefault(logger)
	return logger
}

// newScraper builds the scraper for the configured page source: local
// directory when --local-dir is set, live HTTP otherwise.
func newScraper(cfg *config.Config) *scrape.Scraper {
	var fetcher fetch.Fetcher
	if cfg.LocalDir != "" {
		fetcher = fetch.NewLocalFetcher(cfg.LocalDir)
	} else {
		client := &http.Client{Timeout: cfg.Timeout}
		fetcher = fetch.NewHTTPFetcher(client, cfg.BaseURL,
			fetch.WithUserAgent(cfg.UserAgent),
			fetch.WithMaxBodySize(cfg.MaxBodySize),
		)
	}
	return scrape.New(fetcher, scrape.WithArticlePrefix(cfg.ArticlePrefix))
}

// openStore loads the word-count store, warning when a corrupt file was
// replaced by an empty one.
func openStore(cfg *config.Config, logger *slog.Logger) (*words.Store, error) {
	store := words.NewStore(cfg.StorePath)
	if err := store.Load(); err != nil {
		return nil, fmt.Errorf("failed to load word store %s: %w", cfg.StorePath, err)
	}
	if store.Recovered() {
		logger.Warn("word store was corrupt and has been reset", "path", cfg.StorePath)
	}
	return store, nil
}
