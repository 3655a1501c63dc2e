package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dkoosis/sarifmd/pkg/mapper"
	"github.com/dkoosis/sarifmd/pkg/render"
	"github.com/dkoosis/sarifmd/pkg/report"
	"github.com/dkoosis/sarifmd/pkg/sarif"
)

var formats = []string{"markdown", "terminal", "text", "json"}

func (a *app) renderCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "render [FILE|-]",
		Short: "Render one SARIF document (stdin by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return a.runRender(path, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "markdown", "Output format: "+strings.Join(formats, ", "))
	addMarkdownFlags(cmd)
	addThemeFlags(cmd)
	return cmd
}

func addMarkdownFlags(cmd *cobra.Command) {
	cmd.Flags().String("decoration", string(render.DecorationEmoji), "Severity decoration: "+strings.Join(render.Decorations(), ", "))
	cmd.Flags().Bool("no-details", false, "Omit the collapsible rule help column")
}

func addThemeFlags(cmd *cobra.Command) {
	cmd.Flags().String("theme", "default", "Terminal theme: "+strings.Join(render.Themes(), ", "))
	cmd.Flags().Bool("no-color", false, "Disable colors (same as NO_COLOR)")
}

func (a *app) runRender(path, format string) error {
	doc, err := a.readDocument(path)
	if err != nil {
		return err
	}

	var out string
	switch format {
	case "markdown":
		out = report.RenderSARIF(doc, a.cfg.Markdown, a.logger)
	case "terminal":
		report.LogSummaries(doc, a.logger)
		out = a.terminal().Render(mapper.FromSARIF(doc))
	case "text":
		report.LogSummaries(doc, a.logger)
		out = render.NewText().Render(mapper.FromSARIF(doc))
	case "json":
		report.LogSummaries(doc, a.logger)
		out = render.NewJSON().Render(mapper.FromSARIF(doc))
	default:
		return usageErrorf("unknown format %q (expected %s)", format, strings.Join(formats, ", "))
	}

	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err = fmt.Fprint(a.stdout, out)
	return err
}

// readDocument reads SARIF from path, or from stdin when path is "-".
func (a *app) readDocument(path string) (*sarif.Document, error) {
	if path == "-" {
		doc, err := sarif.Read(a.stdin)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return doc, nil
	}
	return sarif.ReadFile(path)
}

func (a *app) terminal() *render.Terminal {
	return render.NewTerminal(render.ThemeByName(a.cfg.Theme), termWidth(a.stdout))
}
