// Package report composes rendered SARIF reports into a single pull-request
// comment.
package report

import (
	"fmt"
	"regexp"
)

const (
	// DefaultTitle identifies the bot comment; upserts match on it.
	DefaultTitle = "🔒 Security Scan Results"

	DefaultCodeLabel      = "📝 Code Scan"
	DefaultCodePath       = "code-reports/snyk-code-report.sarif"
	DefaultContainerLabel = "🐳 Container Scan"
	DefaultContainerPath  = "container-reports/snyk-container-report.sarif"
)

var sectionRe = regexp.MustCompile(`^\s*([^=]*?)\s*=\s*(\S.*?)\s*$`)

// Section is one labelled SARIF report within a comment.
type Section struct {
	Label string `yaml:"label" json:"label"` // rendered as a "## " heading
	Path  string `yaml:"path" json:"path"`   // SARIF file on disk
}

// DefaultSections returns the code scan and container scan sections.
func DefaultSections() []Section {
	return []Section{
		{Label: DefaultCodeLabel, Path: DefaultCodePath},
		{Label: DefaultContainerLabel, Path: DefaultContainerPath},
	}
}

// ParseSection parses "Label=path". The label may not be empty; the first
// "=" separates label from path.
func ParseSection(s string) (Section, error) {
	m := sectionRe.FindStringSubmatch(s)
	if m == nil || m[1] == "" {
		return Section{}, fmt.Errorf("invalid section %q: want Label=path", s)
	}
	return Section{Label: m[1], Path: m[2]}, nil
}

// ParseSections parses each "Label=path" value in order.
func ParseSections(values []string) ([]Section, error) {
	sections := make([]Section, 0, len(values))
	for _, v := range values {
		sec, err := ParseSection(v)
		if err != nil {
			return nil, err
		}
		sections = append(sections, sec)
	}
	return sections, nil
}
