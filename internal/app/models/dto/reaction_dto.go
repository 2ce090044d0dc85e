package dto

import "github.com/yigit/sharelearning/internal/app/models"

// ReactionResponse represents a reaction in read responses
type ReactionResponse struct {
	ID    int64  `json:"id"`
	Type  string `json:"type"`
	Emoji string `json:"emoji"`
}

// ReactionListResponse is returned by GET /reactions
type ReactionListResponse struct {
	Reactions []ReactionResponse `json:"reactions"`
}

// ReviewReactionsResponse is returned by GET /review/reactions/:id
type ReviewReactionsResponse struct {
	ReviewID  int64              `json:"review_id"`
	Reactions []ReactionResponse `json:"reactions"`
}

// PrerequisiteReactionsResponse is returned by GET /prerequisite/reactions/:id
type PrerequisiteReactionsResponse struct {
	CoursePrerequisiteID int64              `json:"course_prerequisite_id"`
	Reactions            []ReactionResponse `json:"reactions"`
}

// NewReactionResponses converts reaction rows. The result is never nil so it encodes as [].
func NewReactionResponses(reactions []*models.Reaction) []ReactionResponse {
	out := make([]ReactionResponse, 0, len(reactions))
	for _, r := range reactions {
		out = append(out, ReactionResponse{ID: r.ID, Type: r.Type, Emoji: r.Emoji})
	}
	return out
}
