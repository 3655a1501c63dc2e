package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkoosis/sarifmd/pkg/pattern"
)

func terminalPatterns() []pattern.Pattern {
	return []pattern.Pattern{
		&pattern.Overview{Total: 2, Runs: 2, Counts: []pattern.SeverityCount{{Severity: "high", Count: 2}}},
		&pattern.RunSection{Number: 1, Tool: "Snyk Code", Rows: []pattern.Row{
			{Severity: "high", RuleID: "SQL001", Message: "Unsanitized input\nflows into query", File: "src/db.js", Line: "12"},
			{Severity: "high", RuleID: "XSS002", Message: "Reflected XSS", File: "src/view.js", Line: "N/A"},
		}},
		&pattern.RunSection{Number: 2, Tool: "Snyk Container"},
	}
}

func TestTerminal_RendersOverviewAndTables(t *testing.T) {
	out := NewTerminal(MonoTheme(), 120).Render(terminalPatterns())

	assert.Contains(t, out, "2 findings across 2 runs")
	assert.Contains(t, out, "* High: 2")
	assert.Contains(t, out, "Run 1 - Snyk Code")
	assert.Contains(t, out, "SQL001")
	assert.Contains(t, out, "Unsanitized input …")
	assert.NotContains(t, out, "flows into query")
	assert.Contains(t, out, "Run 2 - Snyk Container")
	assert.Contains(t, out, "+ No issues found in this run.")
}

func TestTerminal_TruncatesLongCells(t *testing.T) {
	long := strings.Repeat("x", 200)
	out := NewTerminal(MonoTheme(), 80).Render([]pattern.Pattern{
		&pattern.RunSection{Number: 1, Tool: "t", Rows: []pattern.Row{
			{Severity: "low", RuleID: "R", Message: long, File: long, Line: "1"},
		}},
	})
	assert.NotContains(t, out, long)
	assert.Contains(t, out, "…")
}

func TestTerminal_NoticeOnly(t *testing.T) {
	out := NewTerminal(MonoTheme(), 0).Render([]pattern.Pattern{&pattern.Notice{Text: "No runs found in the SARIF file."}})
	assert.Equal(t, "No runs found in the SARIF file.\n", out)
}

func TestThemeByName(t *testing.T) {
	assert.Equal(t, "mono", ThemeByName("mono").Name)
	assert.Equal(t, "default", ThemeByName("anything").Name)
}
