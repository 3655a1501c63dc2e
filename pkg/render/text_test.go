package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkoosis/sarifmd/pkg/pattern"
)

func TestText_ScopeAndSeverityOrder(t *testing.T) {
	out := NewText().Render([]pattern.Pattern{
		&pattern.Overview{Total: 3, Runs: 1, Counts: []pattern.SeverityCount{
			{Severity: "low", Count: 1}, {Severity: "critical", Count: 2},
		}},
		&pattern.RunSection{Number: 1, Tool: "Snyk Code", Rows: []pattern.Row{
			{Severity: "low", RuleID: "L1", Message: "minor", File: "a.go", Line: "N/A"},
			{Severity: "critical", RuleID: "C1", Message: "first critical", File: "b.go", Line: "9"},
			{Severity: "critical", RuleID: "C2", Message: "second critical", File: "c.go", Line: "1"},
		}},
	})

	want := "SCOPE: 3 findings, 1 run (1 low, 2 critical)\n" +
		"\n## Run 1 Snyk Code\n" +
		"  CRITICAL C1 b.go:9 first critical\n" +
		"  CRITICAL C2 c.go:1 second critical\n" +
		"  LOW L1 a.go minor\n"
	assert.Equal(t, want, out)
	assert.NotContains(t, out, "\x1b[")
}

func TestText_TruncatesLongMessages(t *testing.T) {
	msg := strings.Join([]string{"head", "l1", "l2", "l3", "l4", "l5"}, "\n")
	out := NewText().Render([]pattern.Pattern{
		&pattern.RunSection{Number: 1, Tool: "t", Rows: []pattern.Row{
			{Severity: "high", RuleID: "R", Message: msg, File: "f", Line: "2"},
		}},
	})
	assert.Contains(t, out, "  HIGH R f:2 head\n    l1\n    l2\n    l3\n    ... (2 more lines)\n")
	assert.NotContains(t, out, "l4")
}

func TestText_EmptyRun(t *testing.T) {
	out := NewText().Render([]pattern.Pattern{&pattern.RunSection{Number: 2, Tool: "Snyk Container"}})
	assert.Equal(t, "\n## Run 2 Snyk Container\n  No issues found in this run.\n", out)
}

func TestText_CRLFMessagesAndLargeCounts(t *testing.T) {
	out := NewText().Render([]pattern.Pattern{
		&pattern.Overview{Total: 1500, Runs: 1, Counts: []pattern.SeverityCount{{Severity: "high", Count: 1500}}},
		&pattern.RunSection{Number: 1, Tool: "t", Rows: []pattern.Row{
			{Severity: "high", RuleID: "R", Message: "head\r\nnext\rlast", File: "f", Line: "2"},
		}},
	})
	assert.Contains(t, out, "SCOPE: 1,500 findings, 1 run (1,500 high)\n")
	assert.Contains(t, out, "  HIGH R f:2 head\n    next\n    last\n")
	assert.NotContains(t, out, "\r")
}
