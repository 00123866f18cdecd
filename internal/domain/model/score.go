package model

import (
	"cmp"
	"slices"
)

// ScoreEntry is the net reaction score of one issue.
type ScoreEntry struct {
	IssueNumber int
	Score       int
}

// Tally accumulates reaction weights per issue number. An issue gets an
// entry the first time any reaction is added for it, so issues that never
// received a reaction stay absent while issues whose reactions cancel out
// keep an entry with score 0. The zero value is ready to use.
type Tally struct {
	index   map[int]int
	entries []ScoreEntry
}

// Add folds one reaction into the score of the given issue.
func (t *Tally) Add(issueNumber int, content ReactionContent) {
	if t.index == nil {
		t.index = make(map[int]int)
	}

	i, ok := t.index[issueNumber]
	if !ok {
		i = len(t.entries)
		t.index[issueNumber] = i
		t.entries = append(t.entries, ScoreEntry{IssueNumber: issueNumber})
	}
	t.entries[i].Score += content.Weight()
}

// AddAll folds every reaction of an issue into the tally.
func (t *Tally) AddAll(issueNumber int, reactions []Reaction) {
	for _, r := range reactions {
		t.Add(issueNumber, r.Content)
	}
}

// Score returns the current score for an issue and whether it has an entry.
func (t *Tally) Score(issueNumber int) (int, bool) {
	i, ok := t.index[issueNumber]
	if !ok {
		return 0, false
	}
	return t.entries[i].Score, true
}

// Len returns the number of issues with at least one reaction.
func (t *Tally) Len() int {
	return len(t.entries)
}

// Rank returns the entries ordered by score, highest first. Equal scores keep
// the order in which their issues first received a reaction.
func (t *Tally) Rank() Ranking {
	ranked := slices.Clone(t.entries)
	slices.SortStableFunc(ranked, func(a, b ScoreEntry) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if ranked == nil {
		ranked = []ScoreEntry{}
	}
	return ranked
}

// Ranking is a list of score entries in descending score order. Positions
// are 1-based: Ranking[0] is position 1.
type Ranking []ScoreEntry
