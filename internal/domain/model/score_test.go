package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ericfisherdev/reactrank/internal/domain/model"
)

func reactions(contents ...model.ReactionContent) []model.Reaction {
	out := make([]model.Reaction, 0, len(contents))
	for _, c := range contents {
		out = append(out, model.Reaction{Content: c})
	}
	return out
}

func TestReactionContent_Weight(t *testing.T) {
	tests := []struct {
		content model.ReactionContent
		want    int
	}{
		{model.ReactionThumbsUp, 1},
		{model.ReactionThumbsDown, -1},
		{model.ReactionLaugh, 0},
		{model.ReactionConfused, 0},
		{model.ReactionHeart, 0},
		{model.ReactionHooray, 0},
		{model.ReactionRocket, 0},
		{model.ReactionEyes, 0},
		{model.ReactionContent("unknown"), 0},
		{model.ReactionContent(""), 0},
	}

	for _, tc := range tests {
		t.Run(string(tc.content), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.content.Weight())
		})
	}
}

func TestTally_RankOrdersByScoreDescending(t *testing.T) {
	var tally model.Tally
	tally.AddAll(1, reactions(model.ReactionThumbsUp, model.ReactionThumbsUp, model.ReactionThumbsDown))
	tally.AddAll(2, reactions(model.ReactionThumbsUp, model.ReactionThumbsUp))

	ranking := tally.Rank()

	assert.Equal(t, model.Ranking{
		{IssueNumber: 2, Score: 2},
		{IssueNumber: 1, Score: 1},
	}, ranking)
}

func TestTally_ZeroWeightReactionsStillCreateEntry(t *testing.T) {
	var tally model.Tally
	tally.AddAll(7, reactions(model.ReactionLaugh, model.ReactionConfused))

	score, ok := tally.Score(7)

	assert.True(t, ok)
	assert.Equal(t, 0, score)
	assert.Equal(t, model.Ranking{{IssueNumber: 7, Score: 0}}, tally.Rank())
}

func TestTally_NoReactionsMeansNoEntry(t *testing.T) {
	var tally model.Tally
	tally.AddAll(3, nil)
	tally.AddAll(4, reactions(model.ReactionThumbsDown))

	_, ok := tally.Score(3)

	assert.False(t, ok)
	assert.Equal(t, 1, tally.Len())
	assert.Equal(t, model.Ranking{{IssueNumber: 4, Score: -1}}, tally.Rank())
}

func TestTally_TiesKeepInsertionOrder(t *testing.T) {
	var tally model.Tally
	tally.AddAll(30, reactions(model.ReactionThumbsUp))
	tally.AddAll(10, reactions(model.ReactionThumbsUp))
	tally.AddAll(20, reactions(model.ReactionHeart, model.ReactionThumbsUp, model.ReactionThumbsUp))
	tally.AddAll(40, reactions(model.ReactionThumbsUp))

	ranking := tally.Rank()

	assert.Equal(t, model.Ranking{
		{IssueNumber: 20, Score: 2},
		{IssueNumber: 30, Score: 1},
		{IssueNumber: 10, Score: 1},
		{IssueNumber: 40, Score: 1},
	}, ranking)
}

func TestTally_RankIsNonIncreasing(t *testing.T) {
	var tally model.Tally
	contents := []model.ReactionContent{
		model.ReactionThumbsUp, model.ReactionThumbsDown, model.ReactionRocket,
	}
	for n := 1; n <= 50; n++ {
		for k := 0; k < n%7; k++ {
			tally.Add(n, contents[(n+k)%len(contents)])
		}
	}

	ranking := tally.Rank()

	for i := 1; i < len(ranking); i++ {
		assert.GreaterOrEqual(t, ranking[i-1].Score, ranking[i].Score, "position %d", i+1)
	}
}

func TestTally_RankDoesNotMutateTally(t *testing.T) {
	var tally model.Tally
	tally.AddAll(1, reactions(model.ReactionThumbsUp))
	tally.AddAll(2, reactions(model.ReactionThumbsUp, model.ReactionThumbsUp))

	first := tally.Rank()
	second := tally.Rank()

	assert.Equal(t, first, second)
	score, _ := tally.Score(1)
	assert.Equal(t, 1, score)
}

func TestTally_EmptyRankIsNotNil(t *testing.T) {
	var tally model.Tally

	ranking := tally.Rank()

	assert.NotNil(t, ranking)
	assert.Empty(t, ranking)
}

func TestWithoutPullRequests(t *testing.T) {
	issues := []model.Issue{
		{Number: 1, Title: "bug"},
		{Number: 2, Title: "pr", IsPullRequest: true},
		{Number: 3, Title: "feature"},
	}

	kept := model.WithoutPullRequests(issues)

	assert.Equal(t, []model.Issue{
		{Number: 1, Title: "bug"},
		{Number: 3, Title: "feature"},
	}, kept)
}
