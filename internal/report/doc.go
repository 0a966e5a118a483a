// Package report provides report construction and output functionality.
//
// NewReport turns the analyzer's duplicate mapping into the final
// model.Report, computing the per-target summaries and grand totals.
//
// Writers render the report in different formats:
//   - JSONWriter: structured JSON output for tool integration (default)
//   - MarkdownWriter: GitHub Flavored Markdown for documentation and sharing
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably regardless of the output destination (stdout or file).
package report
