package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for wikiharvest.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wikiharvest",
		Short: "Wiki scraper and word-frequency harvester",
		Long: `wikiharvest scrapes MediaWiki-style wikis (Terraria wiki by default).

It extracts page summaries and tables, counts the words on pages, and can
crawl outward from a seed page with a politeness delay, accumulating word
frequencies into a persistent store for later analysis.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewSummaryCmd())
	cmd.AddCommand(NewTableCmd())
	cmd.AddCommand(NewCountCmd())
	cmd.AddCommand(NewCrawlCmd())
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
