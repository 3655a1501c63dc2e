// Package mapper converts parsed SARIF documents to patterns.
package mapper

import (
	"github.com/dkoosis/sarifmd/pkg/pattern"
	"github.com/dkoosis/sarifmd/pkg/sarif"
)

// NoRunsText is emitted in place of any section when a document has no runs.
const NoRunsText = "No runs found in the SARIF file."

// FromSARIF converts a SARIF document into patterns.
// Returns: Notice when there are no runs; otherwise Overview (only when some
// run has results or rules) followed by one RunSection per run.
func FromSARIF(doc *sarif.Document) []pattern.Pattern {
	runs := sarif.Runs(doc)
	if len(runs) == 0 {
		return []pattern.Pattern{&pattern.Notice{Text: NoRunsText}}
	}

	patterns := make([]pattern.Pattern, 0, len(runs)+1)
	if sarif.HasData(doc) {
		patterns = append(patterns, overview(doc, len(runs)))
	}
	for i, run := range runs {
		patterns = append(patterns, runSection(i+1, run))
	}
	return patterns
}

func overview(doc *sarif.Document, runs int) *pattern.Overview {
	counts := sarif.CountBySeverity(doc)
	o := &pattern.Overview{
		Runs:   runs,
		Counts: make([]pattern.SeverityCount, 0, len(counts)),
	}
	for _, c := range counts {
		o.Total += c.Count
		o.Counts = append(o.Counts, pattern.SeverityCount{Severity: c.Severity, Count: c.Count})
	}
	return o
}

func runSection(number int, run *sarif.Run) *pattern.RunSection {
	findings := sarif.Findings(run)
	rows := make([]pattern.Row, len(findings))
	for i, f := range findings {
		rows[i] = pattern.Row{
			Severity: f.Severity,
			RuleID:   f.RuleID,
			Message:  f.Message,
			File:     f.Location,
			Line:     f.Line,
			Help:     f.Help,
		}
	}
	tool := sarif.ToolName(run)
	if tool == "" {
		tool = sarif.DefaultToolName
	}
	return &pattern.RunSection{Number: number, Tool: tool, Rows: rows}
}
