package models

import (
	"slices"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	FirstName      string                    `json:"firstName" gorm:"default:''"`
	LastName       string                    `json:"lastName" gorm:"default:''"`
	Email          string                    `json:"email" gorm:"unique;not null"`
	Courses        datatypes.JSONSlice[uint] `json:"courses"`
	CourseProgress datatypes.JSONSlice[uint] `json:"courseProgress"`
}

// FullName is the display name used in emails
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func (u *User) HasCourse(courseID uint) bool {
	return slices.Contains(u.Courses, courseID)
}
