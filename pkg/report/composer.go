package report

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/dkoosis/sarifmd/pkg/mapper"
	"github.com/dkoosis/sarifmd/pkg/render"
	"github.com/dkoosis/sarifmd/pkg/sarif"
)

// Composer reads each configured section's SARIF file and composes the comment.
type Composer struct {
	Title    string
	Sections []Section
	Options  render.MarkdownOptions
	Now      func() time.Time // defaults to time.Now
	Logger   *slog.Logger     // defaults to discarding
}

// Compose renders every section and assembles the comment. The first section
// that cannot be read or decoded aborts composition.
func (c *Composer) Compose() (Comment, error) {
	logger := c.logger()
	parts := make([]Part, 0, len(c.Sections))
	for _, sec := range c.Sections {
		data, err := os.ReadFile(sec.Path)
		if err != nil {
			return Comment{}, fmt.Errorf("section %q: %w: %w", sec.Label, sarif.ErrRead, err)
		}
		logger.Debug("read sarif report", "section", sec.Label, "path", sec.Path, "size", humanize.Bytes(uint64(len(data))))

		doc, err := sarif.ReadBytes(data)
		if err != nil {
			return Comment{}, fmt.Errorf("section %q: %s: %w", sec.Label, sec.Path, err)
		}
		parts = append(parts, Part{Label: sec.Label, Markdown: RenderSARIF(doc, c.Options, logger)})
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	title := c.Title
	if title == "" {
		title = DefaultTitle
	}
	return Compose(title, now(), parts), nil
}

func (c *Composer) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// RenderSARIF logs a per-run summary at debug level and renders the document
// as Markdown.
func RenderSARIF(doc *sarif.Document, opts render.MarkdownOptions, logger *slog.Logger) string {
	LogSummaries(doc, logger)
	return render.NewMarkdown(opts).Render(mapper.FromSARIF(doc))
}

// LogSummaries logs tool, result count, rule count and distinct severities
// for each run at debug level.
func LogSummaries(doc *sarif.Document, logger *slog.Logger) {
	if logger == nil {
		return
	}
	summaries := sarif.Summaries(doc)
	if len(summaries) == 0 {
		logger.Debug("no runs found in sarif document")
	}
	for _, s := range summaries {
		logger.Debug("sarif run",
			"run", s.Index,
			"tool", s.Tool,
			"results", s.Results,
			"rules", s.Rules,
			"severities", s.Severities)
	}
}
