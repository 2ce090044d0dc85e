package dto

// Request bodies use pointer fields so that an absent key can be told apart
// from a zero value; presence is checked by the service pipelines.

// CreateReviewRequest is the body of POST /reviews/:id
type CreateReviewRequest struct {
	Content *string `json:"content" validate:"required"`
}

// CreateReactionRequest is the body of POST /reactions/new_reaction
type CreateReactionRequest struct {
	Type  *string `json:"type" validate:"required"`
	Emoji *string `json:"emoji" validate:"required"`
}

// CreateReviewReactionRequest is the body of POST /reactions/new_review_reaction
type CreateReviewReactionRequest struct {
	ReviewID   *int64 `json:"review_id" validate:"required,gt=0"`
	ReactionID *int64 `json:"reaction_id" validate:"required,gt=0"`
}

// CreatePrerequisiteReactionRequest is the body of POST /reactions/new_prerequisite_reaction
type CreatePrerequisiteReactionRequest struct {
	CoursePrerequisiteID *int64 `json:"course_prerequisite_id" validate:"required,gt=0"`
	ReactionID           *int64 `json:"reaction_id" validate:"required,gt=0"`
}

// CreatePrerequisiteRequest is the body of POST /prerequisite/:id
type CreatePrerequisiteRequest struct {
	Prerequisite *string `json:"prerequisite" validate:"required"`
}
