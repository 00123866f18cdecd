package cli

import (
	"bytes"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ericfisherdev/reactrank/internal/domain/model"
	"github.com/ericfisherdev/reactrank/internal/domain/port/driven"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestReporter() (*Reporter, *bytes.Buffer) {
	var buf bytes.Buffer
	r := NewReporter(&buf)
	r.now = func() time.Time { return fixedNow }
	return r, &buf
}

func TestReporter_ProgressLines(t *testing.T) {
	r, buf := newTestReporter()

	r.IssuesFetched(2)
	r.GatheringReactions(1)
	r.GatheringReactions(2)

	assert.Equal(t, "Fetched 2 issues!\nGathering reactions for issue: 1\nGathering reactions for issue: 2\n", buf.String())
}

func TestReporter_PrintRanking(t *testing.T) {
	r, buf := newTestReporter()

	r.PrintRanking(model.Ranking{
		{IssueNumber: 2, Score: 2},
		{IssueNumber: 1, Score: 1},
		{IssueNumber: 9, Score: 0},
		{IssueNumber: 5, Score: -3},
	})

	want := "\n" +
		"#1 – 2 with 2 upvotes!\n" +
		"#2 – 1 with 1 upvotes!\n" +
		"#3 – 9 with 0 upvotes!\n" +
		"#4 – 5 with -3 upvotes!\n"
	assert.Equal(t, want, buf.String())
}

func TestReporter_PrintRankingEmpty(t *testing.T) {
	r, buf := newTestReporter()

	r.PrintRanking(model.Ranking{})

	assert.Equal(t, "\n", buf.String())
}

func TestReporter_RequestFailed(t *testing.T) {
	tests := []struct {
		name string
		err  *driven.RequestError
		want string
	}{
		{
			name: "plain failure",
			err:  &driven.RequestError{Endpoint: "repos/o/r/issues", StatusCode: http.StatusInternalServerError},
			want: "Exited with HTTP status code: 500\n",
		},
		{
			name: "rate limited with minutes left",
			err: &driven.RequestError{
				StatusCode:     http.StatusForbidden,
				RateLimitReset: fixedNow.Add(12*time.Minute + 30*time.Second),
			},
			want: "Exited with HTTP status code: 403\nPlease try again later after 12 minute(s)!\n",
		},
		{
			name: "rate limited with seconds left",
			err: &driven.RequestError{
				StatusCode:     http.StatusTooManyRequests,
				RateLimitReset: fixedNow.Add(45 * time.Second),
			},
			want: "Exited with HTTP status code: 429\nPlease try again later after 45 second(s)!\n",
		},
		{
			name: "rate limited without reset header",
			err:  &driven.RequestError{StatusCode: http.StatusForbidden},
			want: "Exited with HTTP status code: 403\nPlease try again later in sometime!\n",
		},
		{
			name: "transport failure",
			err:  &driven.RequestError{Endpoint: "repos/o/r/issues", Err: errors.New("connection refused")},
			want: "Request to repos/o/r/issues failed: connection refused\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, buf := newTestReporter()

			r.RequestFailed(tc.err)

			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestWaitHint(t *testing.T) {
	assert.Equal(t, "after 1 minute(s)", waitHint(time.Minute))
	assert.Equal(t, "after 59 second(s)", waitHint(59*time.Second+900*time.Millisecond))
	assert.Equal(t, "after 0 second(s)", waitHint(-5*time.Second))
}
