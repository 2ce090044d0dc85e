package models

import "time"

// Review is free-text feedback on a course. Immutable once stored.
type Review struct {
	ID          int64     `json:"id" db:"id"`
	Content     string    `json:"content" db:"content"`
	CreatedTime time.Time `json:"created_time" db:"created_time"`
}
