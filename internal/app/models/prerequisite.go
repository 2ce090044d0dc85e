package models

// Prerequisite is a requirement that can be linked to courses.
type Prerequisite struct {
	ID      int64  `json:"id" db:"id"`
	Content string `json:"content" db:"content"`
}

// CoursePrerequisite links a prerequisite to a course.
// Content is filled when loaded together with the prerequisite.
type CoursePrerequisite struct {
	ID             int64  `json:"id" db:"id"`
	CourseID       int64  `json:"course_id" db:"course_id"`
	PrerequisiteID int64  `json:"prerequisite_id" db:"prerequisite_id"`
	Content        string `json:"content,omitempty" db:"content"`
}
