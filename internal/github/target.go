package github

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNoTarget is returned when the repository or pull request cannot be determined.
var ErrNoTarget = errors.New("no pull request target")

// Target identifies the pull request (or issue) that receives the comment.
type Target struct {
	Owner  string
	Repo   string
	Number int
}

func (t Target) String() string {
	return fmt.Sprintf("%s/%s#%d", t.Owner, t.Repo, t.Number)
}

// Validate reports whether the target is complete.
func (t Target) Validate() error {
	if t.Owner == "" || t.Repo == "" {
		return fmt.Errorf("%w: repository not set", ErrNoTarget)
	}
	if t.Number <= 0 {
		return fmt.Errorf("%w: pull request number not set", ErrNoTarget)
	}
	return nil
}

// ParseRepo splits "owner/name".
func ParseRepo(s string) (owner, repo string, err error) {
	owner, repo, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return "", "", fmt.Errorf("invalid repository %q: want owner/name", s)
	}
	return owner, repo, nil
}

// actionsEvent is the subset of the Actions webhook payload carrying a number.
type actionsEvent struct {
	Number      int `json:"number"`
	PullRequest *struct {
		Number int `json:"number"`
	} `json:"pull_request"`
	Issue *struct {
		Number int `json:"number"`
	} `json:"issue"`
}

// TargetFromEnv resolves the target from the Actions environment:
// GITHUB_REPOSITORY and the event payload at GITHUB_EVENT_PATH.
// Missing values are left zero; call Validate before use.
func TargetFromEnv(getenv func(string) string) (Target, error) {
	var t Target
	if repo := getenv("GITHUB_REPOSITORY"); repo != "" {
		owner, name, err := ParseRepo(repo)
		if err != nil {
			return Target{}, fmt.Errorf("GITHUB_REPOSITORY: %w", err)
		}
		t.Owner, t.Repo = owner, name
	}

	path := getenv("GITHUB_EVENT_PATH")
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Target{}, fmt.Errorf("read event payload: %w", err)
	}
	var ev actionsEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return Target{}, fmt.Errorf("decode event payload %s: %w", path, err)
	}
	switch {
	case ev.PullRequest != nil && ev.PullRequest.Number > 0:
		t.Number = ev.PullRequest.Number
	case ev.Issue != nil && ev.Issue.Number > 0:
		t.Number = ev.Issue.Number
	default:
		t.Number = ev.Number
	}
	return t, nil
}
