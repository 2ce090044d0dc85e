package models

import "time"

// Reaction is an emoji-tagged response type. Type is unique across all reactions.
type Reaction struct {
	ID    int64  `json:"id" db:"id"`
	Type  string `json:"type" db:"type"`
	Emoji string `json:"emoji" db:"emoji"`
}

// ReviewReaction records a reaction attached to a review.
type ReviewReaction struct {
	ID         int64     `json:"id" db:"id"`
	ReviewID   int64     `json:"review_id" db:"review_id"`
	ReactionID int64     `json:"reaction_id" db:"reaction_id"`
	Time       time.Time `json:"time" db:"time"`
}

// CoursePrerequisiteReaction records a reaction attached to a course prerequisite.
type CoursePrerequisiteReaction struct {
	ID                   int64     `json:"id" db:"id"`
	CoursePrerequisiteID int64     `json:"course_prerequisite_id" db:"course_prerequisite_id"`
	ReactionID           int64     `json:"reaction_id" db:"reaction_id"`
	Time                 time.Time `json:"time" db:"time"`
}
