package report

import (
	"strings"
	"time"
)

// TimestampLayout is ISO-8601 with millisecond precision; UTC renders as "Z".
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Comment is the title and body of the bot comment.
type Comment struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Markdown returns the full comment text posted to the pull request.
func (c Comment) Markdown() string {
	return "# " + c.Title + "\n" + c.Body
}

// Part is a section label paired with its rendered Markdown.
type Part struct {
	Label    string
	Markdown string
}

// Compose builds the comment body: the timestamp line, then one "## label"
// heading per part in order.
func Compose(title string, ts time.Time, parts []Part) Comment {
	var sb strings.Builder
	sb.WriteString("Last updated: ")
	sb.WriteString(ts.UTC().Format(TimestampLayout))
	sb.WriteString("\n")
	for _, p := range parts {
		sb.WriteString("\n## ")
		sb.WriteString(p.Label)
		sb.WriteString("\n")
		sb.WriteString(strings.TrimRight(p.Markdown, "\n"))
		sb.WriteString("\n")
	}
	return Comment{Title: title, Body: sb.String()}
}
