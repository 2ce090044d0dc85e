package models

import "time"

// CourseSource identifies the external catalog a course was ingested from.
type CourseSource string

const (
	SourceCoursera CourseSource = "coursera"
	SourceUdacity  CourseSource = "udacity"
	SourceYouTube  CourseSource = "youtube"
)

// Course is a catalog entry created by the ingestion jobs. Read-only here.
type Course struct {
	ID         int64        `json:"id" db:"id"`
	Source     CourseSource `json:"source" db:"source"`
	ExternalID string       `json:"external_id" db:"external_id"`
	Title      string       `json:"title" db:"title"`
	CreatedAt  time.Time    `json:"created_at" db:"created_at"`
}

// CourseReview links a review to the course it was written for.
type CourseReview struct {
	ID       int64 `json:"id" db:"id"`
	CourseID int64 `json:"course_id" db:"course_id"`
	ReviewID int64 `json:"review_id" db:"review_id"`
}
