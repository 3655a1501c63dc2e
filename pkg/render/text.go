package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/dkoosis/sarifmd/pkg/pattern"
)

// maxMessageLines bounds how much of a multi-line message is printed.
const maxMessageLines = 3

var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Text renders patterns as terse plain text for CI logs.
// Zero ANSI codes; within a run, findings are ordered most severe first.
type Text struct{}

// NewText creates a plain text renderer.
func NewText() *Text {
	return &Text{}
}

// Render formats all patterns as plain text.
func (x *Text) Render(patterns []pattern.Pattern) string {
	var sb strings.Builder
	for _, p := range patterns {
		switch v := p.(type) {
		case *pattern.Notice:
			sb.WriteString(v.Text + "\n")
		case *pattern.Overview:
			sb.WriteString("SCOPE: " + textScope(v) + "\n")
		case *pattern.RunSection:
			x.writeRun(&sb, v)
		}
	}
	return sb.String()
}

func (x *Text) writeRun(sb *strings.Builder, rs *pattern.RunSection) {
	fmt.Fprintf(sb, "\n## Run %d %s\n", rs.Number, rs.Tool)
	if len(rs.Rows) == 0 {
		sb.WriteString("  " + NoIssuesText + "\n")
		return
	}

	rows := make([]pattern.Row, len(rs.Rows))
	copy(rows, rs.Rows)
	sort.SliceStable(rows, func(i, j int) bool {
		return BucketOf(rows[i].Severity).rank() < BucketOf(rows[j].Severity).rank()
	})

	for _, r := range rows {
		loc := r.File
		if r.Line != "" && r.Line != "N/A" {
			loc += ":" + r.Line
		}
		lines := strings.Split(newlineReplacer.Replace(r.Message), "\n")
		fmt.Fprintf(sb, "  %s %s %s %s\n", strings.ToUpper(r.Severity), r.RuleID, loc, lines[0])
		rest := lines[1:]
		if len(rest) > maxMessageLines {
			for _, line := range rest[:maxMessageLines] {
				sb.WriteString("    " + line + "\n")
			}
			fmt.Fprintf(sb, "    ... (%d more lines)\n", len(rest)-maxMessageLines)
			continue
		}
		for _, line := range rest {
			sb.WriteString("    " + line + "\n")
		}
	}
}

func textScope(o *pattern.Overview) string {
	parts := []string{
		humanize.Comma(int64(o.Total)) + " " + plural(o.Total, "finding"),
		humanize.Comma(int64(o.Runs)) + " " + plural(o.Runs, "run"),
	}
	scope := strings.Join(parts, ", ")
	if len(o.Counts) == 0 {
		return scope
	}
	breakdown := make([]string, len(o.Counts))
	for i, c := range o.Counts {
		breakdown[i] = humanize.Comma(int64(c.Count)) + " " + c.Severity
	}
	return scope + " (" + strings.Join(breakdown, ", ") + ")"
}
