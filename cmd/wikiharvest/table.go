package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"wikiharvest/internal/model"
)

// NewTableCmd creates the table command.
func NewTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table <phrase>",
		Short: "Extract a wiki page table to CSV",
		Long: `Table extracts the Nth table of a wiki page (1-based), writes it to
<phrase>.csv in the current directory, and prints how often each value
appears in each column.

Examples:
  # First table of the NPCs page
  wikiharvest table NPCs

  # Third table, treating its first row as column names
  wikiharvest table Bosses --number 3 --first-row-is-header`,
		Args: cobra.ExactArgs(1),
		RunE: runTableCmd,
	}

	addSourceFlags(cmd)
	cmd.Flags().IntP("number", "n", 1, "Which table to extract, counting from 1")
	cmd.Flags().Bool("first-row-is-header", false,
		"Treat the table's first row as column names")

	return cmd
}

// runTableCmd executes the table command.
func runTableCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	setupLogger(cfg.Verbose)

	number, err := cmd.Flags().GetInt("number")
	if err != nil {
		return err
	}
	headerRow, err := cmd.Flags().GetBool("first-row-is-header")
	if err != nil {
		return err
	}

	id := model.NewPageIdentifier(args[0])
	scraper := newScraper(cfg)

	rows, err := scraper.TableRows(cmd.Context(), id, number)
	if err != nil {
		return fmt.Errorf("failed to extract table %d from %s: %w", number, id.Display(), err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("table %d of %s is empty", number, id.Display())
	}

	filename := id.String() + ".csv"
	if err := writeCSV(filename, rows); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Table saved to %s\n", filename)

	printValueCounts(cmd, rows, headerRow)
	return nil
}

// writeCSV writes the row matrix as a CSV file.
func writeCSV(filename string, rows [][]string) error {
	f, err := os.Create(filename) //nolint:gosec // Filename derives from the user's phrase
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

// printValueCounts prints, for each column, how often each distinct value
// appears in the data rows. Empty cells are skipped. Output is sorted by
// count descending with alphabetical tie-breaks so it is deterministic.
func printValueCounts(cmd *cobra.Command, rows [][]string, headerRow bool) {
	out := cmd.OutOrStdout()

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	data := rows
	var header []string
	if headerRow {
		header = rows[0]
		data = rows[1:]
	}

	fmt.Fprintln(out, "\n--- COLUMN VALUE COUNTS ---")
	for col := 0; col < width; col++ {
		name := "column " + strconv.Itoa(col+1)
		if headerRow && col < len(header) && header[col] != "" {
			name = header[col]
		}
		fmt.Fprintf(out, "\n%s\n", name)

		counts := make(map[string]int)
		for _, row := range data {
			if col >= len(row) {
				continue
			}
			v := strings.TrimSpace(row[col])
			if v == "" {
				continue
			}
			counts[v]++
		}

		values := make([]string, 0, len(counts))
		for v := range counts {
			values = append(values, v)
		}
		sort.Slice(values, func(i, j int) bool {
			if counts[values[i]] != counts[values[j]] {
				return counts[values[i]] > counts[values[j]]
			}
			return values[i] < values[j]
		})

		for _, v := range values {
			fmt.Fprintf(out, "  %-30s %d\n", v, counts[v])
		}
	}
	fmt.Fprintln(out, "---------------------------")
}
