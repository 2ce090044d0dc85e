package dto

import (
	"github.com/yigit/sharelearning/internal/app/models"
	"github.com/yigit/sharelearning/internal/pkg/helpers"
)

// ReviewResponse represents a review in read responses
type ReviewResponse struct {
	ID          int64  `json:"id"`
	Content     string `json:"content"`
	CreatedTime string `json:"created_time" example:"2024-03-05 07:08:09"`
}

// CourseReviewsResponse is returned by GET /reviews/:id
type CourseReviewsResponse struct {
	CourseID int64            `json:"course_id"`
	Reviews  []ReviewResponse `json:"reviews"`
}

// NewReviewResponses converts review rows
func NewReviewResponses(reviews []*models.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, ReviewResponse{
			ID:          r.ID,
			Content:     r.Content,
			CreatedTime: helpers.FormatTimestamp(r.CreatedTime),
		})
	}
	return out
}
