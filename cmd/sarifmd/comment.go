package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkoosis/sarifmd/internal/github"
	"github.com/dkoosis/sarifmd/pkg/report"
)

type commentOptions struct {
	output string
	json   bool
	post   bool
	repo   string
	pr     int
}

func (a *app) commentCommand() *cobra.Command {
	var opts commentOptions
	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Compose the pull-request comment from every configured section",
		Long: `Compose the pull-request comment from every configured section.

Each section is a "Label=path" pair; the SARIF file at path is rendered under
a "## Label" heading. With --post the comment is created on the pull request,
or the existing bot comment carrying the same title is updated.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runComment(cmd, opts)
		},
	}
	f := cmd.Flags()
	f.StringArray("section", nil, `Report section as "Label=path" (repeatable, replaces configured sections)`)
	f.String("title", report.DefaultTitle, "Comment title; also identifies the comment to update")
	addMarkdownFlags(cmd)
	f.StringVarP(&opts.output, "output", "o", "", "Write the comment to a file instead of stdout")
	f.BoolVar(&opts.json, "json", false, `Emit {"title","body"} as JSON`)
	f.BoolVar(&opts.post, "post", false, "Create or update the comment on the pull request")
	f.StringVar(&opts.repo, "repo", "", "Repository as owner/name (default: $GITHUB_REPOSITORY)")
	f.IntVar(&opts.pr, "pr", 0, "Pull request number (default: from $GITHUB_EVENT_PATH)")
	f.String("bot-login", "", "Also treat comments by this login as the bot's")
	return cmd
}

func (a *app) runComment(cmd *cobra.Command, opts commentOptions) error {
	composer := &report.Composer{
		Title:    a.cfg.Title,
		Sections: a.cfg.Sections,
		Options:  a.cfg.Markdown,
		Logger:   a.logger,
	}
	c, err := composer.Compose()
	if err != nil {
		return err
	}

	if err := a.writeComment(c, opts); err != nil {
		return err
	}
	if !opts.post {
		return nil
	}

	target, err := resolveTarget(opts)
	if err != nil {
		return err
	}
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return usageErrorf("--post requires GITHUB_TOKEN")
	}
	client, err := github.NewClient(token, os.Getenv("GITHUB_API_URL"))
	if err != nil {
		return usageErrorf("%v", err)
	}

	outcome, err := github.NewUpserter(client.Issues, a.cfg.BotLogin, a.logger).Upsert(cmd.Context(), target, c)
	if err != nil {
		return err
	}
	a.logger.Info("comment posted", "action", outcome.Action, "id", outcome.ID, "url", outcome.URL)
	fmt.Fprintf(a.stderr, "sarifmd: %s comment %s\n", outcome.Action, outcome.URL)
	return nil
}

func (a *app) writeComment(c report.Comment, opts commentOptions) error {
	var out string
	if opts.json {
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return fmt.Errorf("encode comment: %w", err)
		}
		out = string(data) + "\n"
	} else {
		out = c.Markdown()
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(out), 0o644); err != nil {
			return fmt.Errorf("write comment: %w", err)
		}
		a.logger.Debug("comment written", "path", opts.output)
		return nil
	}
	_, err := fmt.Fprint(a.stdout, out)
	return err
}

// resolveTarget prefers --repo/--pr and falls back to the Actions environment.
func resolveTarget(opts commentOptions) (github.Target, error) {
	target, err := github.TargetFromEnv(os.Getenv)
	if err != nil {
		return github.Target{}, err
	}
	if opts.repo != "" {
		owner, repo, err := github.ParseRepo(opts.repo)
		if err != nil {
			return github.Target{}, usageErrorf("--repo: %v", err)
		}
		target.Owner, target.Repo = owner, repo
	}
	if opts.pr != 0 {
		target.Number = opts.pr
	}
	if err := target.Validate(); err != nil {
		return github.Target{}, usageErrorf("%v; set --repo and --pr, or run inside a pull request workflow", err)
	}
	return target, nil
}
