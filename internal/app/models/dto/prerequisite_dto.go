package dto

import "github.com/yigit/sharelearning/internal/app/models"

// CoursePrerequisiteResponse represents a prerequisite linked to a course
type CoursePrerequisiteResponse struct {
	CoursePrerequisiteID int64  `json:"course_prerequisite_id"`
	PrerequisiteID       int64  `json:"prerequisite_id"`
	Content              string `json:"content"`
}

// CoursePrerequisitesResponse is returned by GET /prerequisite/:id
type CoursePrerequisitesResponse struct {
	CourseID      int64                        `json:"course_id"`
	Prerequisites []CoursePrerequisiteResponse `json:"prerequisites"`
}

// NewCoursePrerequisiteResponses converts course prerequisite rows
func NewCoursePrerequisiteResponses(items []*models.CoursePrerequisite) []CoursePrerequisiteResponse {
	out := make([]CoursePrerequisiteResponse, 0, len(items))
	for _, cp := range items {
		out = append(out, CoursePrerequisiteResponse{
			CoursePrerequisiteID: cp.ID,
			PrerequisiteID:       cp.PrerequisiteID,
			Content:              cp.Content,
		})
	}
	return out
}
