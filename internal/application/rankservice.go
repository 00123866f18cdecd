// Package application contains use-case orchestration services.
package application

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ericfisherdev/reactrank/internal/domain/model"
	"github.com/ericfisherdev/reactrank/internal/domain/port/driven"
)

// RankService lists a repository's open issues, fetches the reactions on
// each and ranks the issues by net reaction score.
//
// Request failures degrade to empty results and are reported through the
// progress port. Decode failures and cancellation of the run abort it.
type RankService struct {
	source      driven.IssueSource
	progress    driven.Progress
	concurrency int
	timeout     time.Duration
}

// NewRankService creates a new RankService. concurrency bounds the number of
// reaction requests in flight; values below 1 mean 1. timeout applies to each
// request; zero disables it.
func NewRankService(
	source driven.IssueSource,
	progress driven.Progress,
	concurrency int,
	timeout time.Duration,
) *RankService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &RankService{
		source:      source,
		progress:    progress,
		concurrency: concurrency,
		timeout:     timeout,
	}
}

// Rank runs the three phases for repo and returns the ranking. It returns an
// error only when the run must abort; no partial ranking is returned then.
func (s *RankService) Rank(ctx context.Context, repo model.Repository) (model.Ranking, error) {
	start := time.Now()

	issues, err := s.listIssues(ctx, repo)
	if err != nil {
		return nil, err
	}
	s.progress.IssuesFetched(len(issues))

	reactions, err := s.fetchReactions(ctx, repo, issues)
	if err != nil {
		return nil, err
	}

	ranking := Score(issues, reactions)

	slog.Info("ranking complete",
		"repo", repo.FullName(),
		"issues", len(issues),
		"ranked", len(ranking),
		"duration", time.Since(start).Round(time.Millisecond),
	)

	return ranking, nil
}

// Score folds each issue's reactions into a tally and ranks it. reactions[i]
// holds the reactions of issues[i]. The fold visits issues in order, so equal
// scores rank in listing order of their first reaction.
func Score(issues []model.Issue, reactions [][]model.Reaction) model.Ranking {
	var tally model.Tally
	for i, issue := range issues {
		if i < len(reactions) {
			tally.AddAll(issue.Number, reactions[i])
		}
	}
	return tally.Rank()
}

// listIssues fetches the open issues and drops pull requests.
func (s *RankService) listIssues(ctx context.Context, repo model.Repository) ([]model.Issue, error) {
	callCtx, cancel := s.requestContext(ctx)
	defer cancel()

	issues, err := s.source.ListOpenIssues(callCtx, repo)
	if err != nil {
		if err := s.absorb(ctx, err, "repo", repo.FullName()); err != nil {
			return nil, err
		}
		return []model.Issue{}, nil
	}

	kept := model.WithoutPullRequests(issues)

	slog.Debug("issues listed",
		"repo", repo.FullName(),
		"listed", len(issues),
		"pull_requests", len(issues)-len(kept),
	)

	return kept, nil
}

// fetchReactions fetches the reactions of every issue with at most
// s.concurrency requests in flight. The result is indexed like issues.
func (s *RankService) fetchReactions(ctx context.Context, repo model.Repository, issues []model.Issue) ([][]model.Reaction, error) {
	results := make([][]model.Reaction, len(issues))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, issue := range issues {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			s.progress.GatheringReactions(issue.Number)

			reactions, err := s.fetchIssueReactions(gctx, repo, issue.Number)
			if err != nil {
				return err
			}
			results[i] = reactions
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (s *RankService) fetchIssueReactions(ctx context.Context, repo model.Repository, issueNumber int) ([]model.Reaction, error) {
	callCtx, cancel := s.requestContext(ctx)
	defer cancel()

	reactions, err := s.source.ListIssueReactions(callCtx, repo, issueNumber)
	if err != nil {
		if err := s.absorb(ctx, err, "repo", repo.FullName(), "issue", issueNumber); err != nil {
			return nil, err
		}
		return []model.Reaction{}, nil
	}

	return reactions, nil
}

// absorb decides whether a fetch error degrades to an empty result (nil) or
// aborts the run (the error, returned as is). Only request failures are
// absorbed, and only while ctx is still live.
func (s *RankService) absorb(ctx context.Context, err error, attrs ...any) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	var reqErr *driven.RequestError
	if !errors.As(err, &reqErr) {
		return err
	}

	slog.Warn("request failed, continuing with empty result", append(attrs, "error", err)...)
	s.progress.RequestFailed(reqErr)
	return nil
}

func (s *RankService) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
