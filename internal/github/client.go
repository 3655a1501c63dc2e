// Package github finds or creates the bot comment on a pull request through
// the GitHub REST API.
package github

import (
	"fmt"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v66/github"
)

// DefaultAPIURL is the public GitHub API endpoint.
const DefaultAPIURL = "https://api.github.com"

// NewClient returns an API client authenticated with token. A non-empty
// apiURL other than the public endpoint (e.g. GitHub Enterprise, a test
// server) replaces the base URL.
func NewClient(token, apiURL string) (*gh.Client, error) {
	client := gh.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	apiURL = strings.TrimSpace(apiURL)
	if apiURL == "" || strings.TrimSuffix(apiURL, "/") == DefaultAPIURL {
		return client, nil
	}
	if !strings.HasSuffix(apiURL, "/") {
		apiURL += "/"
	}
	u, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", apiURL, err)
	}
	client.BaseURL = u
	return client, nil
}
