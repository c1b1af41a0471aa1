package paymentController

import (
	"context"
	"fmt"
	"log"

	"studynotion/models"
	"studynotion/utils"

	"github.com/juju/errors"
	"gorm.io/gorm"
)

var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrAlreadyEnrolled = errors.New("student is already enrolled")
)

// CheckoutTotal sums the price of courseIDs, failing with ErrCourseNotFound
// or ErrAlreadyEnrolled on the first course that cannot be bought by userID.
func CheckoutTotal(ctx context.Context, db *gorm.DB, courseIDs []uint, userID uint) (float64, error) {
	db = db.WithContext(ctx)

	var totalAmount float64
	for _, courseID := range courseIDs {
		course, err := findCourse(db, courseID)
		if err != nil {
			return 0, errors.Trace(err)
		}
		if course.HasStudent(userID) {
			return 0, ErrAlreadyEnrolled
		}
		totalAmount += course.Price
	}

	return totalAmount, nil
}

// EnrollUserInCourses enrolls userID in each course in order. Every course
// is committed (and mailed) before the next one starts; the first failure
// stops the loop and earlier courses stay enrolled.
func EnrollUserInCourses(ctx context.Context, db *gorm.DB, mailer utils.Mailer, courseIDs []uint, userID uint) error {
	db = db.WithContext(ctx)

	for _, courseID := range courseIDs {
		if err := enrollUserInCourse(db, mailer, courseID, userID); err != nil {
			log.Printf("[ENROLL] Enrolling user %d in course %d failed: %v", userID, courseID, err)
			return errors.Trace(err)
		}
	}

	log.Printf("[ENROLL] User %d successfully enrolled in %d courses", userID, len(courseIDs))
	return nil
}

func enrollUserInCourse(db *gorm.DB, mailer utils.Mailer, courseID, userID uint) error {
	course, err := pushStudent(db, courseID, userID)
	if err != nil {
		return errors.Trace(err)
	}

	if err := pushUserCourse(db, userID, courseID); err != nil {
		return errors.Trace(err)
	}

	progress := models.CourseProgress{UserID: userID, CourseID: courseID}
	if err := db.Create(&progress).Error; err != nil {
		return errors.Trace(err)
	}

	if err := pushUserProgress(db, userID, progress.ID); err != nil {
		return errors.Trace(err)
	}

	recipient, err := findUser(db, userID)
	if err != nil {
		return errors.Trace(err)
	}

	body := utils.CourseEnrollmentEmail(course.CourseName, recipient.FullName(), course.CourseDescription, course.Thumbnail)
	subject := fmt.Sprintf("You have successfully enrolled for %s", course.CourseName)
	if err := mailer.Send(recipient.Email, subject, body); err != nil {
		return errors.Trace(err)
	}

	return nil
}

// pushStudent appends userID to the course's enrolled-student set and returns the updated course
func pushStudent(db *gorm.DB, courseID, userID uint) (models.Course, error) {
	course, err := findCourse(db, courseID)
	if err != nil {
		return course, errors.Trace(err)
	}

	course.StudentsEnrolled = append(course.StudentsEnrolled, userID)
	if err := db.Model(&course).Update("students_enrolled", course.StudentsEnrolled).Error; err != nil {
		return course, errors.Trace(err)
	}

	return course, nil
}

func pushUserCourse(db *gorm.DB, userID, courseID uint) error {
	user, err := findUser(db, userID)
	if err != nil {
		return errors.Trace(err)
	}

	return db.Model(&user).Update("courses", append(user.Courses, courseID)).Error
}

func pushUserProgress(db *gorm.DB, userID, progressID uint) error {
	user, err := findUser(db, userID)
	if err != nil {
		return errors.Trace(err)
	}

	return db.Model(&user).Update("course_progress", append(user.CourseProgress, progressID)).Error
}

func findCourse(db *gorm.DB, courseID uint) (models.Course, error) {
	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return course, ErrCourseNotFound
		}
		return course, errors.Trace(err)
	}
	return course, nil
}

func findUser(db *gorm.DB, userID uint) (models.User, error) {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, ErrUserNotFound
		}
		return user, errors.Trace(err)
	}
	return user, nil
}
