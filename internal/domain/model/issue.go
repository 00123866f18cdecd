package model

// Issue represents an open item in a repository's issue tracker.
// IsPullRequest is decided once when the API object is mapped; the GitHub
// issues endpoint returns pull requests too and marks them with a
// pull_request sub-object.
type Issue struct {
	Number        int
	Title         string
	IsPullRequest bool
}

// WithoutPullRequests returns the issues that are not pull requests,
// preserving their order.
func WithoutPullRequests(issues []Issue) []Issue {
	kept := make([]Issue, 0, len(issues))
	for _, issue := range issues {
		if issue.IsPullRequest {
			continue
		}
		kept = append(kept, issue)
	}
	return kept
}
