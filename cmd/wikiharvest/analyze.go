package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"wikiharvest/internal/analysis"
	"wikiharvest/internal/config"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compare stored word counts against general English",
		Long: `Analyze compares the word counts accumulated by count and crawl against
general English word frequencies. Both sides are normalized to [0,1] so a
small store and a billion-word corpus can sit in the same table.

Modes:
  article   sort by the wiki's own word frequencies (the default);
            surfaces the wiki's characteristic vocabulary
  language  sort by general-English frequency; shows how the wiki
            uses everyday words

Examples:
  # Top 10 wiki words
  wikiharvest analyze

  # Top 25 everyday English words as used in the store
  wikiharvest analyze --mode language --count 25

  # Write a Markdown report with a frequency chart
  wikiharvest analyze --chart frequencies.md`,
		Args: cobra.NoArgs,
		RunE: runAnalyzeCmd,
	}

	cmd.Flags().StringP("store", "s", config.DefaultStoreFile,
		"Word-count store file")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .wikiharvest in current or home directory)")
	cmd.Flags().StringP("mode", "m", string(analysis.ModeArticle),
		"Sort column: article or language")
	cmd.Flags().IntP("count", "n", 10, "Number of words to show")
	cmd.Flags().String("chart", "",
		"Write a Markdown report with a frequency chart to this file")

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	cfg := config.NewConfig()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	if found := config.FindConfigFile(configPath); found != "" {
		cf, err := config.LoadConfigFile(found)
		if err != nil {
			return fmt.Errorf("failed to load config file %s: %w", found, err)
		}
		if err := cf.Apply(cfg); err != nil {
			return err
		}
	} else if configPath != "" {
		return fmt.Errorf("configuration file not found: %s", configPath)
	}
	if cmd.Flags().Changed("store") {
		if cfg.StorePath, err = cmd.Flags().GetString("store"); err != nil {
			return err
		}
	}
	cfg.Verbose = getVerboseFlag(cmd)
	logger := setupLogger(cfg.Verbose)

	mode, err := cmd.Flags().GetString("mode")
	if err != nil {
		return err
	}
	topN, err := cmd.Flags().GetInt("count")
	if err != nil {
		return err
	}
	chartPath, err := cmd.Flags().GetString("chart")
	if err != nil {
		return err
	}

	store, err := openStore(cfg, logger)
	if err != nil {
		return err
	}

	rows, err := analysis.Compare(store.Counts(), analysis.Mode(mode), topN)
	if err != nil {
		return err
	}

	if err := analysis.WriteText(cmd.OutOrStdout(), rows, analysis.Mode(mode)); err != nil {
		return err
	}

	if chartPath != "" {
		if err := writeChart(chartPath, rows, analysis.Mode(mode)); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nChart written to %s\n", chartPath)
	}

	return nil
}

// writeChart writes the Markdown comparison report to path.
func writeChart(path string, rows []analysis.Row, mode analysis.Mode) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create chart directory: %w", err)
		}
	}

	f, err := os.Create(path) //nolint:gosec // User-chosen chart path
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	return analysis.WriteMarkdown(f, rows, mode)
}
