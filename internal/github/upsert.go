package github

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	gh "github.com/google/go-github/v66/github"

	"github.com/dkoosis/sarifmd/pkg/report"
)

const perPage = 100

// Action is what Upsert did to the pull request.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
)

// Outcome describes the comment written by Upsert.
type Outcome struct {
	Action Action `json:"action"`
	ID     int64  `json:"id"`
	URL    string `json:"url"`
}

// CommentsService is the subset of the issues API used by Upserter.
// *github.IssuesService satisfies it.
type CommentsService interface {
	ListComments(ctx context.Context, owner, repo string, number int, opts *gh.IssueListCommentsOptions) ([]*gh.IssueComment, *gh.Response, error)
	EditComment(ctx context.Context, owner, repo string, commentID int64, comment *gh.IssueComment) (*gh.IssueComment, *gh.Response, error)
	CreateComment(ctx context.Context, owner, repo string, number int, comment *gh.IssueComment) (*gh.IssueComment, *gh.Response, error)
}

var _ CommentsService = (*gh.IssuesService)(nil)

// Upserter keeps a single bot comment per pull request up to date.
type Upserter struct {
	comments CommentsService
	botLogin string
	logger   *slog.Logger
}

// NewUpserter creates an Upserter. botLogin, when set, also matches comments
// by that author regardless of the author's account type.
func NewUpserter(comments CommentsService, botLogin string, logger *slog.Logger) *Upserter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Upserter{comments: comments, botLogin: botLogin, logger: logger}
}

// Upsert updates the first bot comment whose body contains the comment title,
// or creates a new comment when there is none. No retries are attempted.
func (u *Upserter) Upsert(ctx context.Context, target Target, c report.Comment) (Outcome, error) {
	if err := target.Validate(); err != nil {
		return Outcome{}, err
	}

	existing, err := u.find(ctx, target, c.Title)
	if err != nil {
		return Outcome{}, err
	}

	body := &gh.IssueComment{Body: gh.String(c.Markdown())}
	if existing != nil {
		u.logger.Debug("updating bot comment", "target", target.String(), "id", existing.GetID())
		updated, _, err := u.comments.EditComment(ctx, target.Owner, target.Repo, existing.GetID(), body)
		if err != nil {
			return Outcome{}, fmt.Errorf("update comment %d: %w", existing.GetID(), err)
		}
		return Outcome{Action: ActionUpdated, ID: updated.GetID(), URL: updated.GetHTMLURL()}, nil
	}

	u.logger.Debug("creating bot comment", "target", target.String())
	created, _, err := u.comments.CreateComment(ctx, target.Owner, target.Repo, target.Number, body)
	if err != nil {
		return Outcome{}, fmt.Errorf("create comment: %w", err)
	}
	return Outcome{Action: ActionCreated, ID: created.GetID(), URL: created.GetHTMLURL()}, nil
}

// find pages through every comment and returns the first match, or nil.
func (u *Upserter) find(ctx context.Context, target Target, title string) (*gh.IssueComment, error) {
	opts := &gh.IssueListCommentsOptions{ListOptions: gh.ListOptions{PerPage: perPage}}
	for {
		page, resp, err := u.comments.ListComments(ctx, target.Owner, target.Repo, target.Number, opts)
		if err != nil {
			return nil, fmt.Errorf("list comments on %s: %w", target, err)
		}
		for _, c := range page {
			if u.isBotComment(c, title) {
				return c, nil
			}
		}
		if resp == nil || resp.NextPage == 0 {
			return nil, nil
		}
		opts.Page = resp.NextPage
	}
}

func (u *Upserter) isBotComment(c *gh.IssueComment, title string) bool {
	user := c.GetUser()
	byBot := user.GetType() == "Bot" || (u.botLogin != "" && user.GetLogin() == u.botLogin)
	return byBot && strings.Contains(c.GetBody(), title)
}
