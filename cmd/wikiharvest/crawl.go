package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"wikiharvest/internal/config"
	"wikiharvest/internal/crawler"
	"wikiharvest/internal/database"
	"wikiharvest/internal/model"
	"wikiharvest/internal/report"
	"wikiharvest/internal/words"
)

// NewCrawlCmd creates the crawl command.
func NewCrawlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crawl <phrase>",
		Short: "Crawl outward from a page, accumulating word counts",
		Long: `Crawl walks the wiki breadth-first from a seed page, following internal
article links up to the configured depth. Every page it reaches has its
words counted and merged into the persistent store, and the run is
recorded in the crawl history database.

Each page is visited at most once per run, and a politeness delay is
enforced between requests. Interrupting a crawl keeps everything merged
so far: the store is committed after every page.

Examples:
  # Seed page plus everything it links to, one request per second
  wikiharvest crawl Terraria

  # Deeper and slower, with a Markdown report written to a file
  wikiharvest crawl Bosses --depth 2 --wait 2s --markdown --output report.md

  # Just the seed page, report as JSON
  wikiharvest crawl Terraria --depth 0 --json`,
		Args: cobra.ExactArgs(1),
		RunE: runCrawlCmd,
	}

	addSourceFlags(cmd)
	cmd.Flags().IntP("depth", "d", config.DefaultCrawlDepth,
		"Maximum link distance from the seed page (0 = seed only)")
	cmd.Flags().DurationP("wait", "w", config.DefaultCrawlWait,
		"Delay between successive page requests")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().Bool("no-db", false,
		"Do not record this run in the crawl history database")
	cmd.Flags().String("db-dir", "",
		"Crawl history database directory (default: XDG data dir)")

	return cmd
}

// runCrawlCmd executes the crawl command.
func runCrawlCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildCrawlConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	logger := setupLogger(cfg.Verbose)

	// Handle interrupt signals so a long crawl can be stopped cleanly;
	// everything merged before the interrupt stays in the store.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runCrawl(ctx, cmd, cfg, model.NewPageIdentifier(args[0]), logger)
}

// buildCrawlConfig extends the shared config with crawl-specific flags.
func buildCrawlConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, err
	}

	if cfg.CrawlDepth, err = cmd.Flags().GetInt("depth"); err != nil {
		return nil, err
	}
	if cfg.CrawlWait, err = cmd.Flags().GetDuration("wait"); err != nil {
		return nil, err
	}
	if cfg.JSONReport, err = cmd.Flags().GetBool("json"); err != nil {
		return nil, err
	}
	if cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.ReportFile, err = cmd.Flags().GetString("output"); err != nil {
		return nil, err
	}

	noDB, err := cmd.Flags().GetBool("no-db")
	if err != nil {
		return nil, err
	}
	cfg.SaveToDB = !noDB

	if cmd.Flags().Changed("db-dir") {
		if cfg.DBDir, err = cmd.Flags().GetString("db-dir"); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// runCrawl executes the crawl and emits the report.
func runCrawl(ctx context.Context, cmd *cobra.Command, cfg *config.Config, seed model.PageIdentifier, logger *slog.Logger) error {
	store, err := openStore(cfg, logger)
	if err != nil {
		return err
	}

	// Open the history database before crawling so a broken database
	// fails fast instead of losing the run record at the end.
	var db *database.CrawlDB
	if cfg.SaveToDB {
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
	}

	engine := crawler.NewEngine(newScraper(cfg), words.NewAggregator(store),
		crawler.WithMaxDepth(cfg.CrawlDepth),
		crawler.WithPace(cfg.CrawlWait),
		crawler.WithLogger(logger),
	)

	fmt.Fprintf(cmd.OutOrStdout(), "Crawling %s (depth %d, wait %s)...\n",
		seed.Display(), cfg.CrawlDepth, cfg.CrawlWait)
	start := time.Now()

	crawlReport, runErr := engine.Run(ctx, seed)
	interrupted := errors.Is(runErr, context.Canceled)
	if runErr != nil && !interrupted {
		return runErr
	}
	if interrupted {
		fmt.Fprintln(cmd.OutOrStdout(), "Crawl interrupted; reporting partial results.")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Crawl completed in %s\n", time.Since(start).Round(time.Millisecond))

	if err := outputReport(cfg, crawlReport); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if db != nil {
		// Saving uses a fresh context: the run context may already be
		// cancelled after an interrupt, and the record should survive.
		if err := db.SaveCrawlReport(context.Background(), crawlReport); err != nil {
			logger.Error("failed to save crawl report", "runID", crawlReport.RunID, "error", err)
		} else {
			logger.Debug("crawl report saved", "runID", crawlReport.RunID)
		}
	}

	if interrupted {
		return runErr
	}
	return nil
}

// outputReport writes the crawl report in the configured format to the
// configured destination.
func outputReport(cfg *config.Config, crawlReport *model.CrawlReport) error {
	var output *os.File
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-chosen report path
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	var w report.Writer
	switch {
	case cfg.JSONReport:
		w = report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		w = report.NewMarkdownWriter(output)
	default:
		w = report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}

	_, err := w.Write(crawlReport)
	return err
}
