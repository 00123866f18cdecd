package driven

import (
	"context"

	"github.com/ericfisherdev/reactrank/internal/domain/model"
)

// IssueSource defines the driven port for reading issues and their reactions
// from the GitHub API. Both methods read the first page only.
//
// Failures are reported as *RequestError (non-2xx or transport failure) or
// *DecodeError (2xx response whose body did not match the expected shape).
type IssueSource interface {
	// ListOpenIssues returns up to 100 open issues in API order. Pull requests
	// are included and flagged with IsPullRequest.
	ListOpenIssues(ctx context.Context, repo model.Repository) ([]model.Issue, error)
	// ListIssueReactions returns the reactions recorded on an issue.
	ListIssueReactions(ctx context.Context, repo model.Repository, issueNumber int) ([]model.Reaction, error)
}
