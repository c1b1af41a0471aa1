package models

import (
	"slices"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course is a purchasable course. StudentsEnrolled mirrors User.Courses.
type Course struct {
	gorm.Model
	CourseName        string                    `json:"courseName" gorm:"not null"`
	CourseDescription string                    `json:"courseDescription"`
	Price             float64                   `json:"price" gorm:"default:0"`
	Thumbnail         string                    `json:"thumbnail"`
	StudentsEnrolled  datatypes.JSONSlice[uint] `json:"studentsEnrolled"`
}

// HasStudent reports whether userID is in the course's enrolled-student set
func (c *Course) HasStudent(userID uint) bool {
	return slices.Contains(c.StudentsEnrolled, userID)
}
