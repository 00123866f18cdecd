package driven

// Progress receives run progress for display. Implementations must be safe
// for concurrent use; reaction fetches may run in parallel.
type Progress interface {
	IssuesFetched(count int)
	GatheringReactions(issueNumber int)
	// RequestFailed reports a request the run gave up on and continued without.
	RequestFailed(err *RequestError)
}
