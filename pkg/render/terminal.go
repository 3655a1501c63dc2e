package render

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/sarifmd/pkg/pattern"
)

var titler = cases.Title(language.English)

// fixedColumns is the rough width taken by everything except message and file.
const fixedColumns = 44

// Terminal renders patterns as styled terminal output via lipgloss and go-pretty.
type Terminal struct {
	theme Theme
	width int
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width}
}

// Render formats all patterns for terminal display.
func (t *Terminal) Render(patterns []pattern.Pattern) string {
	var sections []string
	for _, p := range patterns {
		if s := t.renderOne(p); s != "" {
			sections = append(sections, s)
		}
	}
	return strings.Join(sections, "\n")
}

func (t *Terminal) renderOne(p pattern.Pattern) string {
	switch v := p.(type) {
	case *pattern.Notice:
		return t.theme.Muted.Render(v.Text) + "\n"
	case *pattern.Overview:
		return t.renderOverview(v)
	case *pattern.RunSection:
		return t.renderRunSection(v)
	default:
		return ""
	}
}

func (t *Terminal) renderOverview(o *pattern.Overview) string {
	var sb strings.Builder
	sb.WriteString(t.theme.Bold.Render(fmt.Sprintf("%s %s across %s %s",
		humanize.Comma(int64(o.Total)), plural(o.Total, "finding"),
		humanize.Comma(int64(o.Runs)), plural(o.Runs, "run"))))
	sb.WriteString("\n")
	for _, c := range o.Counts {
		sb.WriteString("  ")
		sb.WriteString(t.theme.SeverityStyle(c.Severity).Render(
			t.theme.Icons.Info + " " + titler.String(c.Severity) + ": " + humanize.Comma(int64(c.Count))))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) renderRunSection(rs *pattern.RunSection) string {
	var sb strings.Builder
	sb.WriteString(t.theme.Bold.Render(fmt.Sprintf("Run %d %s %s", rs.Number, t.theme.Icons.Bullet, rs.Tool)))
	sb.WriteString("\n")
	if len(rs.Rows) == 0 {
		sb.WriteString("  ")
		sb.WriteString(t.theme.Success.Render(t.theme.Icons.Pass + " " + NoIssuesText))
		sb.WriteString("\n")
		return sb.String()
	}

	msgWidth, fileWidth := t.columnWidths()
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Severity", "Rule ID", "Message", "File", "Line"})
	for _, row := range rs.Rows {
		tw.AppendRow(table.Row{
			t.theme.SeverityStyle(row.Severity).Render(titler.String(row.Severity)),
			row.RuleID,
			truncate(firstLine(row.Message), msgWidth),
			truncate(row.File, fileWidth),
			row.Line,
		})
	}
	sb.WriteString(tw.Render())
	sb.WriteString("\n")
	return sb.String()
}

// columnWidths splits what the terminal has left between message and file.
func (t *Terminal) columnWidths() (msg, file int) {
	avail := t.width - fixedColumns
	if avail < 30 {
		avail = 30
	}
	file = avail * 2 / 5
	return avail - file, file
}

func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}

func firstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return s[:i] + " …"
	}
	return s
}
