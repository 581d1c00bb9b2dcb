package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"wikiharvest/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the crawl report in Markdown format.
func (w *MarkdownWriter) Write(report *model.CrawlReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeSummary(md, report)
	w.writeNodes(md, report)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.CrawlReport) {
	md.H1("Crawl Report: " + report.Seed.Display())
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Seed Page", "`" + report.Seed.String() + "`"},
			{"Run ID", "`" + report.RunID + "`"},
			{"Max Depth", strconv.Itoa(report.MaxDepth)},
			{"Pace", report.Pace.String()},
			{"Started", report.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Duration", report.Duration.String()},
		},
	})
	md.PlainText("")
}

// writeSummary writes the outcome summary with a pie chart.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.CrawlReport) {
	md.H2("Outcome Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Outcome", "Count"},
		Rows: [][]string{
			{"✅ Processed", strconv.Itoa(report.Processed())},
			{"🔍 Not Found", strconv.Itoa(report.NotFound())},
			{"❌ Fetch Failed", strconv.Itoa(report.FetchFailed())},
			{"**Total**", "**" + strconv.Itoa(len(report.Results)) + "**"},
		},
	})
	md.PlainText("")

	if len(report.Results) > 0 {
		w.writePieChart(md, report)
	}

	if report.Failed() > 0 {
		md.Warningf("%d page(s) could not be processed. See the page table below for details.", report.Failed())
	} else {
		md.Notef("All %d pages processed successfully.", report.Processed())
	}
	md.PlainText("")
}

// writePieChart writes a mermaid pie chart of the outcome distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.CrawlReport) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Page Outcome Distribution"),
		piechart.WithShowData(true),
	)

	if n := report.Processed(); n > 0 {
		chart.LabelAndIntValue("Processed", uint64(n))
	}
	if n := report.NotFound(); n > 0 {
		chart.LabelAndIntValue("Not Found", uint64(n))
	}
	if n := report.FetchFailed(); n > 0 {
		chart.LabelAndIntValue("Fetch Failed", uint64(n))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeNodes writes the per-page table in processing order.
func (w *MarkdownWriter) writeNodes(md *markdown.Markdown, report *model.CrawlReport) {
	md.H2("Pages")
	md.PlainText("")

	rows := make([][]string, 0, len(report.Results))
	for _, res := range report.Results {
		detail := res.Detail
		if res.Outcome == model.OutcomeProcessed {
			detail = strconv.Itoa(res.WordsMerged) + " distinct words"
		}
		rows = append(rows, []string{
			"`" + res.Identifier.String() + "`",
			strconv.Itoa(res.Depth),
			string(res.Outcome),
			detail,
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Page", "Depth", "Outcome", "Detail"},
		Rows:   rows,
	})
	md.PlainText("")
}
