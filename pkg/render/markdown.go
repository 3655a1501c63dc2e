package render

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/dkoosis/sarifmd/pkg/pattern"
)

// NoIssuesText is emitted for a run whose results are empty.
const NoIssuesText = "No issues found in this run."

// MarkdownOptions fixes the table layout of the Markdown renderer.
type MarkdownOptions struct {
	Decoration Decoration
	Details    bool // append a collapsible help column
}

// DefaultMarkdownOptions returns emoji decoration with the details column on.
func DefaultMarkdownOptions() MarkdownOptions {
	return MarkdownOptions{Decoration: DecorationEmoji, Details: true}
}

// Markdown renders patterns as GitHub-flavored Markdown for PR comments.
type Markdown struct {
	opts MarkdownOptions
}

// NewMarkdown creates a Markdown renderer.
func NewMarkdown(opts MarkdownOptions) *Markdown {
	if opts.Decoration == "" {
		opts.Decoration = DecorationNone
	}
	return &Markdown{opts: opts}
}

// Render formats all patterns as Markdown, in order.
func (m *Markdown) Render(patterns []pattern.Pattern) string {
	var sb strings.Builder
	for _, p := range patterns {
		switch v := p.(type) {
		case *pattern.Notice:
			sb.WriteString(v.Text)
		case *pattern.Overview:
			sb.WriteString(overviewLine(v))
			sb.WriteString("\n\n")
		case *pattern.RunSection:
			m.writeRunSection(&sb, v)
		}
	}
	return sb.String()
}

func (m *Markdown) writeRunSection(sb *strings.Builder, rs *pattern.RunSection) {
	fmt.Fprintf(sb, "### Run %d - Tool: **%s**\n\n", rs.Number, escapeInline(rs.Tool))
	if len(rs.Rows) == 0 {
		sb.WriteString(NoIssuesText + "\n\n")
		return
	}

	headers := []string{"Severity", "Rule ID", "Message", "File", "Line"}
	if m.opts.Details {
		headers = append(headers, "Details")
	}
	writeTableRow(sb, headers)
	seps := make([]string, len(headers))
	for i := range seps {
		seps[i] = "---"
	}
	writeTableRow(sb, seps)

	for _, row := range rs.Rows {
		writeTableRow(sb, m.cells(row))
	}
	sb.WriteString("\n")
}

func (m *Markdown) cells(row pattern.Row) []string {
	cells := []string{
		escapeCell(Decorate(row.Severity, m.opts.Decoration)),
		escapeCell(row.RuleID),
		escapeCell(row.Message),
		escapeCell(row.File),
		escapeCell(row.Line),
	}
	if m.opts.Details {
		cells = append(cells, detailsCell(row.Help))
	}
	return cells
}

func writeTableRow(sb *strings.Builder, cells []string) {
	sb.WriteString("| ")
	sb.WriteString(strings.Join(cells, " | "))
	sb.WriteString(" |\n")
}

func detailsCell(help string) string {
	if help == "" {
		return ""
	}
	return "<details><summary>Help</summary>" + escapeCell(htmlReplacer.Replace(help)) + "</details>"
}

// htmlReplacer keeps help text from opening or closing tags around it.
var htmlReplacer = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

var cellReplacer = strings.NewReplacer(
	"|", `\|`,
	"\r\n", "<br>",
	"\n", "<br>",
	"\r", "<br>",
)

// escapeCell makes s safe inside a single Markdown table cell.
func escapeCell(s string) string {
	return cellReplacer.Replace(s)
}

var inlineReplacer = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
)

// escapeInline keeps s on one line and literal inside emphasis.
func escapeInline(s string) string {
	return inlineReplacer.Replace(s)
}

// overviewLine formats e.g. "**3 findings** across 1 run: 2 high, 1 low".
func overviewLine(o *pattern.Overview) string {
	line := fmt.Sprintf("**%s %s** across %s %s",
		humanize.Comma(int64(o.Total)), plural(o.Total, "finding"),
		humanize.Comma(int64(o.Runs)), plural(o.Runs, "run"))
	if len(o.Counts) == 0 {
		return line
	}
	parts := make([]string, len(o.Counts))
	for i, c := range o.Counts {
		parts[i] = humanize.Comma(int64(c.Count)) + " " + c.Severity
	}
	return line + ": " + strings.Join(parts, ", ")
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
