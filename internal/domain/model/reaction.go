package model

// ReactionContent is the emoji kind of a reaction, as named by the GitHub API.
type ReactionContent string

const (
	ReactionThumbsUp   ReactionContent = "+1"
	ReactionThumbsDown ReactionContent = "-1"
	ReactionLaugh      ReactionContent = "laugh"
	ReactionConfused   ReactionContent = "confused"
	ReactionHeart      ReactionContent = "heart"
	ReactionHooray     ReactionContent = "hooray"
	ReactionRocket     ReactionContent = "rocket"
	ReactionEyes       ReactionContent = "eyes"
)

// Weight returns the score contribution of the reaction kind: +1 for a
// thumbs-up, -1 for a thumbs-down and 0 for everything else, unknown kinds
// included.
func (c ReactionContent) Weight() int {
	switch c {
	case ReactionThumbsUp:
		return 1
	case ReactionThumbsDown:
		return -1
	default:
		return 0
	}
}

// Reaction is a single emoji reaction left on an issue.
type Reaction struct {
	Content ReactionContent
}
