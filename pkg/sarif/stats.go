package sarif

import "strconv"

// Resolve applies the fallback chains to one result of a run.
//
//	severity: result.level → rule.defaultConfiguration.level → "unknown"
//	message:  result.message.text → rule.shortDescription.text → "No message"
//
// Severity is returned case-preserved.
func Resolve(run *Run, result *Result) Finding {
	if result == nil {
		result = &Result{}
	}
	ruleID := resultRuleID(result)
	rule := RuleByID(run, ruleID)
	uri, line := resultLocation(result)

	f := Finding{
		Severity: firstNonEmpty(resultLevel(result), ruleDefaultLevel(rule), UnknownSeverity),
		RuleID:   firstNonEmpty(ruleID, NoRuleID),
		Message:  firstNonEmpty(resultMessage(result), ruleShortDescription(rule), NoMessage),
		Location: firstNonEmpty(uri, UnknownLocation),
		Line:     NoLine,
		Help:     ruleHelp(rule),
	}
	if line > 0 {
		f.Line = strconv.Itoa(line)
	}
	return f
}

// Findings resolves every result of a run, in document order.
func Findings(run *Run) []Finding {
	results := Results(run)
	findings := make([]Finding, 0, len(results))
	for _, r := range results {
		findings = append(findings, Resolve(run, r))
	}
	return findings
}

// HasData reports whether any run has results or declares rules.
func HasData(doc *Document) bool {
	for _, run := range Runs(doc) {
		if len(Results(run)) > 0 || len(Rules(run)) > 0 {
			return true
		}
	}
	return false
}

// Summaries computes a RunSummary for each run.
func Summaries(doc *Document) []RunSummary {
	runs := Runs(doc)
	out := make([]RunSummary, 0, len(runs))
	for i, run := range runs {
		findings := Findings(run)
		sev := make([]string, 0)
		seen := make(map[string]bool)
		for _, f := range findings {
			if !seen[f.Severity] {
				seen[f.Severity] = true
				sev = append(sev, f.Severity)
			}
		}
		out = append(out, RunSummary{
			Index:      i,
			Tool:       firstNonEmpty(ToolName(run), DefaultToolName),
			Results:    len(findings),
			Rules:      len(Rules(run)),
			Severities: sev,
		})
	}
	return out
}

// SeverityCount pairs an effective severity with its number of findings.
type SeverityCount struct {
	Severity string `json:"severity"`
	Count    int    `json:"count"`
}

// CountBySeverity tallies findings across all runs, first-appearance order.
func CountBySeverity(doc *Document) []SeverityCount {
	var counts []SeverityCount
	index := make(map[string]int)
	for _, run := range Runs(doc) {
		for _, f := range Findings(run) {
			i, ok := index[f.Severity]
			if !ok {
				i = len(counts)
				index[f.Severity] = i
				counts = append(counts, SeverityCount{Severity: f.Severity})
			}
			counts[i].Count++
		}
	}
	return counts
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
