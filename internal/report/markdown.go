package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/snykdup/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing, e.g. pasting the
// result of a cleanup audit into an issue or wiki page.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown output
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)

	if !report.HasDuplicates() {
		md.PlainText("No duplicate projects found.")
		md.PlainText("")
		return len(md.String()), md.Build()
	}

	for _, target := range report.DuplicatesByTarget {
		w.writeTarget(md, target)
	}

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with the organization summary.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.Report) {
	md.H1("Duplicate Snyk Projects Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Organization", "`" + report.OrgID + "`"},
			{"Targets with duplicates", strconv.Itoa(report.TotalTargetsWithDuplicates)},
			{"Duplicate project instances", strconv.Itoa(report.TotalDuplicateProjects)},
		},
	})
	md.PlainText("")
}

// writeTarget writes one target section with its duplicate-name groups.
func (w *MarkdownWriter) writeTarget(md *markdown.Markdown, target model.TargetDuplicates) {
	md.H2(target.TargetName)
	md.PlainText("")

	for _, entry := range target.DuplicateProjectNames {
		md.H3(entry.ProjectName + " (" + strconv.Itoa(entry.DuplicateCount) + " projects)")
		md.PlainText("")

		rows := make([][]string, 0, len(entry.Projects))
		for _, p := range entry.Projects {
			rows = append(rows, []string{"`" + p.ProjectID + "`", p.ProjectType, p.Origin})
		}

		md.Table(markdown.TableSet{
			Header: []string{"Project ID", "Type", "Origin"},
			Rows:   rows,
		})
		md.PlainText("")
	}
}
