package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wikiharvest/internal/config"
	"wikiharvest/internal/database"
	"wikiharvest/internal/report"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "List or inspect recorded crawl runs",
		Long: `History lists the crawl runs recorded in the history database, most
recent first. Given a run ID it prints that run's full report instead.

Examples:
  # List recorded runs
  wikiharvest history

  # Show one run in detail
  wikiharvest history 2f1c9c2e-8a15-4c57-9f3e-0b6d2f9f4a11`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}

	cmd.Flags().String("db-dir", config.XDGDataDir(),
		"Crawl history database directory")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	setupLogger(getVerboseFlag(cmd))

	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return err
	}

	db, err := database.Open(dbDir, database.Options{CreateIfNotExists: false})
	if err != nil {
		return fmt.Errorf("no crawl history yet: %w", err)
	}
	defer db.Close()

	if len(args) == 1 {
		return showRun(cmd, db, args[0])
	}
	return listRuns(cmd, db)
}

// listRuns prints a one-line summary per recorded run.
func listRuns(cmd *cobra.Command, db *database.CrawlDB) error {
	runs, err := db.ListRuns(cmd.Context())
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No crawl runs recorded yet.")
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-36s  %-19s  %-25s %9s %7s\n",
		"RUN ID", "STARTED", "SEED", "PROCESSED", "FAILED")
	for _, run := range runs {
		fmt.Fprintf(out, "%-36s  %-19s  %-25s %9d %7d\n",
			run.RunID,
			run.StartedAt.Format("2006-01-02 15:04:05"),
			run.Seed.Display(),
			run.Processed,
			run.Failed,
		)
	}
	return nil
}

// showRun prints the full report for one stored run.
func showRun(cmd *cobra.Command, db *database.CrawlDB, runID string) error {
	crawlReport, err := db.GetCrawlReport(cmd.Context(), runID)
	if err != nil {
		return err
	}
	if crawlReport == nil {
		return fmt.Errorf("run %s not found", runID)
	}

	w := report.NewSimpleWriter(cmd.OutOrStdout(), report.WithVerbose(true))
	_, err = w.Write(crawlReport)
	return err
}
