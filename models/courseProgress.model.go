package models

import "gorm.io/gorm"

// CourseProgress tracks one user's completion state in one course.
// A row is created per enrollment; there is no unique constraint on the pair.
type CourseProgress struct {
	gorm.Model
	UserID   uint `json:"userId" gorm:"index;not null"`
	CourseID uint `json:"courseId" gorm:"index;not null"`
}
