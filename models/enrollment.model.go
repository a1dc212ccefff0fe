package models

import "time"

// Enrollment is one entry in a user's enrolled-course set. The composite
// unique index gives the set semantics: a user can hold a course at most once.
// Rows are created only by verified payments and hard-deleted on refund, so
// there is no soft-delete column here.
type Enrollment struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_user_course;not null"`
	CourseID  uint      `json:"course_id" gorm:"uniqueIndex:idx_user_course;not null"`
	CreatedAt time.Time `json:"created_at"`
}
