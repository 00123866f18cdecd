// Package github implements the IssueSource port using the go-github library.
package github

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	gh "github.com/google/go-github/v82/github"

	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"
	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit/github_primary_ratelimit"
	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit/github_secondary_ratelimit"

	"github.com/ericfisherdev/reactrank/internal/domain/model"
	"github.com/ericfisherdev/reactrank/internal/domain/port/driven"
)

const (
	userAgent    = "reactrank"
	acceptHeader = "application/vnd.github+json"

	// issuesPerPage is the page size of the single issues request. Only the
	// first page is read.
	issuesPerPage = 100
)

// Compile-time interface satisfaction check.
var _ driven.IssueSource = (*Client)(nil)

// Client implements the driven.IssueSource port using the go-github library.
type Client struct {
	gh *gh.Client
}

// NewClient creates a new GitHub API client with the following transport stack:
//  1. go-github (GitHub REST API client with PAT auth and User-Agent)
//  2. go-github-ratelimit (detects primary and secondary limits, never sleeps)
//  3. acceptTransport (pins the Accept media type)
func NewClient(token string) *Client {
	return &Client{gh: newGitHubClient(newRateLimitedHTTPClient(nil), token)}
}

// NewClientWithHTTPClient creates a Client with a custom http.Client and base URL.
// This constructor is intended for testing, allowing injection of an httptest server.
// The given client's transport sits below the same rate limit stack NewClient uses.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL, token string) (*Client, error) {
	wrapped := newRateLimitedHTTPClient(httpClient.Transport)
	wrapped.Timeout = httpClient.Timeout
	client := newGitHubClient(wrapped, token)

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	client.BaseURL = u

	return &Client{gh: client}, nil
}

// newRateLimitedHTTPClient builds the rate limit stack over base (nil means
// http.DefaultTransport). A primary limit fails the request, and later
// requests in the same category fail without being sent until the reset.
// A secondary limit response is passed through as is instead of being
// slept on and retried.
func newRateLimitedHTTPClient(base http.RoundTripper) *http.Client {
	return github_ratelimit.NewClient(
		&acceptTransport{base: base},
		github_secondary_ratelimit.WithSingleSleepLimit(0, nil),
	)
}

func newGitHubClient(httpClient *http.Client, token string) *gh.Client {
	client := gh.NewClient(httpClient).WithAuthToken(token)
	client.UserAgent = userAgent
	return client
}

// ListOpenIssues retrieves the first page of open issues for the repository.
// Pull requests are returned too, flagged with IsPullRequest.
func (c *Client) ListOpenIssues(ctx context.Context, repo model.Repository) ([]model.Issue, error) {
	endpoint := fmt.Sprintf("repos/%s/%s/issues", repo.Owner, repo.Name)

	opts := &gh.IssueListByRepoOptions{
		State: "open",
		ListOptions: gh.ListOptions{
			PerPage: issuesPerPage,
		},
	}

	issues, resp, err := c.gh.Issues.ListByRepo(ctx, repo.Owner, repo.Name, opts)
	if err != nil {
		return nil, classifyError(endpoint, resp, err)
	}

	logRateLimit(resp, endpoint, len(issues))

	result := make([]model.Issue, 0, len(issues))
	for _, issue := range issues {
		result = append(result, mapIssue(issue))
	}

	return result, nil
}

// ListIssueReactions retrieves the first page of reactions on an issue.
func (c *Client) ListIssueReactions(ctx context.Context, repo model.Repository, issueNumber int) ([]model.Reaction, error) {
	endpoint := fmt.Sprintf("repos/%s/%s/issues/%d/reactions", repo.Owner, repo.Name, issueNumber)

	reactions, resp, err := c.gh.Reactions.ListIssueReactions(ctx, repo.Owner, repo.Name, issueNumber, nil)
	if err != nil {
		return nil, classifyError(endpoint, resp, err)
	}

	logRateLimit(resp, endpoint, len(reactions))

	result := make([]model.Reaction, 0, len(reactions))
	for _, r := range reactions {
		result = append(result, model.Reaction{Content: model.ReactionContent(r.GetContent())})
	}

	return result, nil
}

// mapIssue converts a go-github Issue to a domain model Issue.
// The issues endpoint marks pull requests with a pull_request object; go-github
// exposes its presence through IsPullRequest.
func mapIssue(issue *gh.Issue) model.Issue {
	return model.Issue{
		Number:        issue.GetNumber(),
		Title:         issue.GetTitle(),
		IsPullRequest: issue.IsPullRequest(),
	}
}

// classifyError turns a go-github failure into a port error. A 2xx response
// that still produced an error means the body did not decode.
func classifyError(endpoint string, resp *gh.Response, err error) error {
	var limitErr *github_primary_ratelimit.RateLimitReachedError
	if errors.As(err, &limitErr) {
		var reset time.Time
		if limitErr.ResetTime != nil {
			reset = *limitErr.ResetTime
		}
		return &driven.RequestError{
			Endpoint:       endpoint,
			StatusCode:     statusCode(limitErr.Response),
			RateLimitReset: reset,
			Err:            err,
		}
	}

	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return &driven.RequestError{
			Endpoint:       endpoint,
			StatusCode:     statusCode(rateErr.Response),
			RateLimitReset: rateErr.Rate.Reset.Time,
			Err:            err,
		}
	}

	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		var reset time.Time
		if abuseErr.RetryAfter != nil {
			reset = time.Now().Add(*abuseErr.RetryAfter)
		}
		return &driven.RequestError{
			Endpoint:       endpoint,
			StatusCode:     statusCode(abuseErr.Response),
			RateLimitReset: reset,
			Err:            err,
		}
	}

	if resp == nil || resp.Response == nil {
		return &driven.RequestError{Endpoint: endpoint, Err: err}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return &driven.DecodeError{Endpoint: endpoint, Err: err}
	}

	return &driven.RequestError{
		Endpoint:       endpoint,
		StatusCode:     resp.StatusCode,
		RateLimitReset: resp.Rate.Reset.Time,
		Err:            err,
	}
}

func statusCode(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

// logRateLimit logs the GitHub API rate limit status after each call.
func logRateLimit(resp *gh.Response, endpoint string, count int) {
	if resp == nil {
		return
	}

	slog.Debug("github api call",
		"endpoint", endpoint,
		"count", count,
		"rate_remaining", resp.Rate.Remaining,
		"rate_limit", resp.Rate.Limit,
	)

	if resp.Rate.Limit > 0 && resp.Rate.Remaining < 100 {
		slog.Warn("github rate limit low",
			"remaining", resp.Rate.Remaining,
			"reset_in", time.Until(resp.Rate.Reset.Time).Round(time.Second),
		)
	}
}
