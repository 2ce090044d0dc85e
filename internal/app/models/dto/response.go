package dto

import "time"

// Plain-text bodies returned by the write endpoints
const (
	MsgReviewCreated               = "Successfully create a new review"
	MsgReactionCreated             = "Successfully create a new reaction"
	MsgReviewReactionCreated       = "Successfully create a new instance of Reaction for review"
	MsgPrerequisiteReactionCreated = "Successfully create a new instance of Reaction for prerequisite"
	MsgPrerequisiteCreated         = "Successfully create a new prerequisite"
)

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
