package sarif

// ToolName returns the run's driver name, or "" when absent.
func ToolName(run *Run) string {
	if run == nil || run.Tool.Driver == nil {
		return ""
	}
	return run.Tool.Driver.Name
}

// Rules returns the rules declared by the run's driver.
func Rules(run *Run) []*Rule {
	if run == nil || run.Tool.Driver == nil {
		return nil
	}
	return run.Tool.Driver.Rules
}

// RuleByID returns the first rule with the given id, or nil.
func RuleByID(run *Run, id string) *Rule {
	if id == "" {
		return nil
	}
	for _, rule := range Rules(run) {
		if rule != nil && rule.ID == id {
			return rule
		}
	}
	return nil
}

// Results returns the run's results. Entries may be nil; Resolve accepts them.
func Results(run *Run) []*Result {
	if run == nil {
		return nil
	}
	return run.Results
}

// Runs returns the document's runs. Entries may be nil; every accessor accepts them.
func Runs(doc *Document) []*Run {
	if doc == nil {
		return nil
	}
	return doc.Runs
}

func resultRuleID(r *Result) string {
	return deref(r.RuleID)
}

func resultLevel(r *Result) string {
	return deref(r.Level)
}

func resultMessage(r *Result) string {
	return deref(r.Message.Text)
}

func resultLocation(r *Result) (uri string, line int) {
	if len(r.Locations) == 0 || r.Locations[0] == nil {
		return "", 0
	}
	pl := r.Locations[0].PhysicalLocation
	if pl == nil {
		return "", 0
	}
	if pl.ArtifactLocation != nil {
		uri = deref(pl.ArtifactLocation.URI)
	}
	if pl.Region != nil && pl.Region.StartLine != nil {
		line = *pl.Region.StartLine
	}
	return uri, line
}

func ruleDefaultLevel(rule *Rule) string {
	if rule == nil || rule.DefaultConfiguration == nil {
		return ""
	}
	return levelString(rule.DefaultConfiguration.Level)
}

func ruleShortDescription(rule *Rule) string {
	if rule == nil || rule.ShortDescription == nil {
		return ""
	}
	return deref(rule.ShortDescription.Text)
}

func ruleHelp(rule *Rule) string {
	if rule == nil || rule.Help == nil {
		return ""
	}
	if md := deref(rule.Help.Markdown); md != "" {
		return md
	}
	return deref(rule.Help.Text)
}

// levelString accepts a configuration level however the model carries it.
func levelString(v any) string {
	switch l := v.(type) {
	case string:
		return l
	case *string:
		return deref(l)
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
