// Package cli renders run progress and the final ranking as console text.
package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ericfisherdev/reactrank/internal/domain/model"
	"github.com/ericfisherdev/reactrank/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.Progress = (*Reporter)(nil)

// Reporter writes line-oriented progress and results to an io.Writer.
type Reporter struct {
	mu  sync.Mutex
	out io.Writer
	now func() time.Time
}

// NewReporter creates a Reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out, now: time.Now}
}

// IssuesFetched prints how many issues survived the listing phase.
func (r *Reporter) IssuesFetched(count int) {
	r.printf("Fetched %d issues!\n", count)
}

// GatheringReactions prints the issue whose reactions are about to be fetched.
func (r *Reporter) GatheringReactions(issueNumber int) {
	r.printf("Gathering reactions for issue: %d\n", issueNumber)
}

// RequestFailed prints the failed status and, for rate-limited responses,
// how long until the limit resets. It never waits.
func (r *Reporter) RequestFailed(err *driven.RequestError) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err.StatusCode == 0 {
		fmt.Fprintf(r.out, "Request to %s failed: %v\n", err.Endpoint, err.Err)
		return
	}
	fmt.Fprintf(r.out, "Exited with HTTP status code: %d\n", err.StatusCode)

	switch {
	case !err.RateLimitReset.IsZero():
		fmt.Fprintf(r.out, "Please try again later %s!\n", waitHint(err.RateLimitReset.Sub(r.now())))
	case err.RateLimited():
		fmt.Fprintln(r.out, "Please try again later in sometime!")
	}
}

// PrintRanking prints a blank separator line followed by one line per entry.
func (r *Reporter) PrintRanking(ranking model.Ranking) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintln(r.out)
	for i, entry := range ranking {
		fmt.Fprintf(r.out, "#%d – %d with %d upvotes!\n", i+1, entry.IssueNumber, entry.Score)
	}
}

func (r *Reporter) printf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, format, args...)
}

// waitHint renders the remaining wait in whole minutes when at least one
// minute is left, otherwise in whole seconds.
func waitHint(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	if minutes := int(remaining / time.Minute); minutes > 0 {
		return fmt.Sprintf("after %d minute(s)", minutes)
	}
	return fmt.Sprintf("after %d second(s)", int(remaining/time.Second))
}
