package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"wikiharvest/internal/model"
	"wikiharvest/internal/words"
)

// countFetchLimit caps concurrent page fetches. Small on purpose: count
// is a one-shot operation and the wiki should not see a request burst.
const countFetchLimit = 4

// NewCountCmd creates the count command.
func NewCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count <phrase>...",
		Short: "Merge page word counts into the persistent store",
		Long: `Count fetches one or more wiki pages, counts every word in their full
text, and merges the counts into the persistent word store. Counts from
repeated runs accumulate; use analyze to inspect them.

Words are lowercased and stripped of leading and trailing punctuation, so
"Terraria," and terraria count as the same word.

Examples:
  # Count a single page
  wikiharvest count Terraria

  # Several pages at once into a dedicated store
  wikiharvest count --store npc-counts.json NPCs Bosses "Town Slimes"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCountCmd,
	}

	addSourceFlags(cmd)

	return cmd
}

// runCountCmd executes the count command.
func runCountCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	logger := setupLogger(cfg.Verbose)

	store, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	scraper := newScraper(cfg)

	ids := make([]model.PageIdentifier, 0, len(args))
	for _, arg := range args {
		ids = append(ids, model.NewPageIdentifier(arg))
	}

	// Fetch concurrently, merge sequentially: the store is single-writer
	// and merge order does not affect the accumulated counts.
	texts := make([]string, len(ids))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(countFetchLimit)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			text, err := scraper.FullText(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to fetch %s: %w", id.Display(), err)
			}
			texts[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	agg := words.NewAggregator(store)
	for i, text := range texts {
		delta, err := agg.Merge(text)
		if err != nil {
			return fmt.Errorf("failed to merge %s: %w", ids[i].Display(), err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d distinct words merged\n", ids[i].Display(), len(delta))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Store %s now holds %d distinct words\n", cfg.StorePath, store.Len())
	return nil
}
