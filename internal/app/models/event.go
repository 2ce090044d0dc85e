package models

import "time"

// ReactionEventType names what happened to a reaction
type ReactionEventType string

const (
	EventReactionCreated             ReactionEventType = "reaction.created"
	EventReviewReactionCreated       ReactionEventType = "review_reaction.created"
	EventPrerequisiteReactionCreated ReactionEventType = "prerequisite_reaction.created"
)

// ReactionEvent is pushed to live feed subscribers after a reaction write commits.
type ReactionEvent struct {
	Type                 ReactionEventType `json:"type"`
	ReactionID           int64             `json:"reaction_id"`
	ReactionType         string            `json:"reaction_type,omitempty"`
	Emoji                string            `json:"emoji,omitempty"`
	ReviewID             int64             `json:"review_id,omitempty"`
	CoursePrerequisiteID int64             `json:"course_prerequisite_id,omitempty"`
	Time                 time.Time         `json:"time"`
}
