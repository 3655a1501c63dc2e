// Package pattern defines the presentation-neutral data a SARIF document is
// reduced to. Patterns are pure data; renderers decide presentation.
package pattern

// PatternType identifies the kind of pattern.
type PatternType string

const (
	PatternTypeNotice     PatternType = "notice"
	PatternTypeOverview   PatternType = "overview"
	PatternTypeRunSection PatternType = "run-section"
)

// Pattern is the interface all patterns implement.
type Pattern interface {
	Type() PatternType
}
