package analysis

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser renders word labels in headings and charts.
var titleCaser = cases.Title(language.English)

// WriteText renders the comparison as aligned plain text for terminals.
func WriteText(w io.Writer, rows []Row, mode Mode) error {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("WORD FREQUENCY COMPARISON (sorted by %s)\n", mode))
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%-20s %10s %10s %10s\n", "WORD", "COUNT", "WIKI", "ENGLISH"))

	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("%-20s %10d %10.3f %10.3f\n",
			row.Word, row.WikiRaw, row.WikiNorm, row.LangNorm))
	}

	_, err := w.Write([]byte(sb.String()))
	return err
}

// WriteMarkdown renders the comparison as a Markdown document with a
// table and a bar-style breakdown of the leading column.
func WriteMarkdown(w io.Writer, rows []Row, mode Mode) error {
	md := markdown.NewMarkdown(w)

	md.H1("Word Frequency Comparison")
	md.PlainText("")
	md.PlainTextf("Sorted by the **%s** column. Both columns are normalized to [0,1] by their own maximum.", mode)
	md.PlainText("")

	tableRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		tableRows = append(tableRows, []string{
			"`" + row.Word + "`",
			strconv.Itoa(row.WikiRaw),
			strconv.FormatFloat(row.WikiNorm, 'f', 3, 64),
			strconv.FormatFloat(row.LangNorm, 'f', 3, 64),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Word", "Wiki Count", "Wiki (norm)", "English (norm)"},
		Rows:   tableRows,
	})
	md.PlainText("")

	writeBars(md, rows, mode)

	return md.Build()
}

// barWidth is the character width of a full bar.
const barWidth = 40

// writeBars renders a fixed-width text bar chart of the sort column.
// Mermaid has no bar chart primitive that renders everywhere, so we use
// a code block with proportional bars instead.
func writeBars(md *markdown.Markdown, rows []Row, mode Mode) {
	md.H2(titleCaser.String(string(mode)) + " Frequency")
	md.PlainText("")

	var sb strings.Builder
	for _, row := range rows {
		v := row.WikiNorm
		if mode == ModeLanguage {
			v = row.LangNorm
		}
		n := int(v*barWidth + 0.5)
		sb.WriteString(fmt.Sprintf("%-20s %s %.3f\n", row.Word, strings.Repeat("█", n), v))
	}
	md.CodeBlocks(markdown.SyntaxHighlightText, strings.TrimRight(sb.String(), "\n"))
	md.PlainText("")
}
