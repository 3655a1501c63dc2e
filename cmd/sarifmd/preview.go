package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dkoosis/sarifmd/internal/viewer"
	"github.com/dkoosis/sarifmd/pkg/mapper"
	"github.com/dkoosis/sarifmd/pkg/report"
	"github.com/dkoosis/sarifmd/pkg/sarif"
)

func (a *app) previewCommand() *cobra.Command {
	var interactive bool
	cmd := &cobra.Command{
		Use:   "preview [FILE...]",
		Short: "Show reports in the terminal (configured sections by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			pages, err := a.previewPages(args)
			if err != nil {
				return err
			}
			if interactive && isTTY(a.stdin) && isTTY(a.stdout) {
				return viewer.Run(cmd.Context(), pages, a.stdin, a.stdout)
			}
			if interactive {
				a.logger.Info("stdout is not a terminal, printing instead of paging")
			}
			for _, p := range pages {
				fmt.Fprintf(a.stdout, "== %s ==\n%s\n", p.Title, p.Content)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Open a scrollable viewer")
	addThemeFlags(cmd)
	return cmd
}

func (a *app) previewPages(paths []string) ([]viewer.Page, error) {
	sections := a.cfg.Sections
	if len(paths) > 0 {
		sections = make([]report.Section, len(paths))
		for i, p := range paths {
			sections[i] = report.Section{Label: filepath.Base(p), Path: p}
		}
	}

	tr := a.terminal()
	pages := make([]viewer.Page, 0, len(sections))
	for _, sec := range sections {
		doc, err := sarif.ReadFile(sec.Path)
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", sec.Label, err)
		}
		report.LogSummaries(doc, a.logger)
		pages = append(pages, viewer.Page{Title: sec.Label, Content: tr.Render(mapper.FromSARIF(doc))})
	}
	return pages, nil
}
