package pattern

// Notice is a standalone line of text, e.g. "No runs found in the SARIF file."
type Notice struct {
	Text string `json:"text"`
}

func (n *Notice) Type() PatternType { return PatternTypeNotice }
