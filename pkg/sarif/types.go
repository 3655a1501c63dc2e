// Package sarif provides SARIF (Static Analysis Results Interchange Format) parsing
// and the defensive accessors used to turn scanner output into findings.
//
// Documents are decoded into the go-sarif model, where every field is a pointer
// or a slice. Nothing here assumes a field is present: accessors return the
// zero value and Resolve applies the documented defaults.
package sarif

import gosarif "github.com/owenrumney/go-sarif/v2/sarif"

// Document represents a SARIF 2.x document.
// See: https://docs.oasis-open.org/sarif/sarif/v2.1.0/sarif-v2.1.0.html
type Document = gosarif.Report

// Run represents a single analysis run.
type Run = gosarif.Run

// Result represents a single issue found by the tool.
type Result = gosarif.Result

// Rule is a finding-type definition referenced by results via ruleId.
type Rule = gosarif.ReportingDescriptor

// Defaults applied when a field is absent.
const (
	DefaultToolName = "Unknown Tool"
	UnknownSeverity = "unknown"
	NoMessage       = "No message"
	NoRuleID        = "N/A"
	UnknownLocation = "unknown"
	NoLine          = "N/A"
)

// Finding is a Result with every default applied. All fields are display strings.
type Finding struct {
	Severity string `json:"severity"`
	RuleID   string `json:"ruleId"`
	Message  string `json:"message"`
	Location string `json:"location"`
	Line     string `json:"line"`
	Help     string `json:"help,omitempty"` // rule help, markdown preferred over text
}

// RunSummary is the per-run overview logged before rendering.
type RunSummary struct {
	Index      int
	Tool       string
	Results    int
	Rules      int
	Severities []string // distinct effective severities, first-appearance order
}
