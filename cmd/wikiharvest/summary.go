package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wikiharvest/internal/model"
)

// NewSummaryCmd creates the summary command.
func NewSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary <phrase>",
		Short: "Print the first paragraph of a wiki page",
		Long: `Summary fetches a wiki page and prints its first meaningful paragraph.

The phrase is resolved the way the wiki itself does: spaces become
underscores, so "Wall of Flesh" and Wall_of_Flesh name the same page.

Examples:
  # Summarize a page from the default wiki
  wikiharvest summary Terraria

  # Spaces are fine when quoted
  wikiharvest summary "Wall of Flesh"

  # Read from a local page dump instead of the network
  wikiharvest summary --local-dir ./pages Terraria`,
		Args: cobra.ExactArgs(1),
		RunE: runSummaryCmd,
	}

	addSourceFlags(cmd)

	return cmd
}

// runSummaryCmd executes the summary command.
func runSummaryCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	setupLogger(cfg.Verbose)

	id := model.NewPageIdentifier(args[0])
	scraper := newScraper(cfg)

	summary, err := scraper.Summary(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to summarize %s: %w", id.Display(), err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), summary)
	return nil
}
