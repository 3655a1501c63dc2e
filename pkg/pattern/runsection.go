package pattern

// RunSection holds one run's findings, one row per result in document order.
// An empty Rows slice means the run reported no issues.
type RunSection struct {
	Number int    `json:"number"` // 1-based position in the document
	Tool   string `json:"tool"`
	Rows   []Row  `json:"rows"`
}

// Row is a single finding with every default already applied.
type Row struct {
	Severity string `json:"severity"`
	RuleID   string `json:"ruleId"`
	Message  string `json:"message"`
	File     string `json:"file"`
	Line     string `json:"line"`
	Help     string `json:"help,omitempty"` // empty = no details block
}

func (r *RunSection) Type() PatternType { return PatternTypeRunSection }
