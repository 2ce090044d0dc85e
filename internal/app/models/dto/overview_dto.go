package dto

import "github.com/yigit/sharelearning/internal/app/models"

// CourseReviewsOverviewResponse is returned by GET /course/:id/reviews
type CourseReviewsOverviewResponse struct {
	Coursera models.CourseCount `json:"coursera"`
	Udacity  models.CourseCount `json:"udacity"`
	YouTube  models.CourseCount `json:"youtube"`
}

// OverviewResponse is returned by GET /overview
type OverviewResponse struct {
	CourseraCount models.CourseCount `json:"coursera_count"`
	UdacityCount  models.CourseCount `json:"udacity_count"`
	YouTubeCount  models.CourseCount `json:"youtube_count"`
}

// NewCourseReviewsOverviewResponse builds the per-course overview body
func NewCourseReviewsOverviewResponse(c models.SourceCounts) CourseReviewsOverviewResponse {
	return CourseReviewsOverviewResponse{Coursera: c.Coursera, Udacity: c.Udacity, YouTube: c.YouTube}
}

// NewOverviewResponse builds the catalog overview body
func NewOverviewResponse(c models.SourceCounts) OverviewResponse {
	return OverviewResponse{CourseraCount: c.Coursera, UdacityCount: c.Udacity, YouTubeCount: c.YouTube}
}
