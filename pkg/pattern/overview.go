package pattern

// Overview totals findings across all runs of a document.
type Overview struct {
	Total  int             `json:"total"`
	Runs   int             `json:"runs"`
	Counts []SeverityCount `json:"counts"` // first-appearance order
}

// SeverityCount is the number of findings carrying one effective severity.
type SeverityCount struct {
	Severity string `json:"severity"`
	Count    int    `json:"count"`
}

func (o *Overview) Type() PatternType { return PatternTypeOverview }
