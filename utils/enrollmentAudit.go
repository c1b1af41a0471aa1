package utils

import (
	"context"
	"log"

	"studynotion/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

type MismatchKind string

const (
	// course lists the student, user record does not list the course
	MismatchUserMissingCourse MismatchKind = "USER_MISSING_COURSE"

	// user lists the course, course record does not list the student
	MismatchCourseMissingStudent MismatchKind = "COURSE_MISSING_STUDENT"

	// more than one progress record for the same (user, course)
	MismatchDuplicateProgress MismatchKind = "DUPLICATE_PROGRESS"
)

// EnrollmentMismatch is one inconsistency found by AuditEnrollments
type EnrollmentMismatch struct {
	Kind     MismatchKind
	UserID   uint
	CourseID uint
	Count    int64 // progress records, only for MismatchDuplicateProgress
}

// InitializeEnrollmentAuditScheduler runs AuditEnrollments on the given cron spec.
// An empty spec disables the scheduler and returns a nil *cron.Cron.
func InitializeEnrollmentAuditScheduler(db *gorm.DB, spec string) (*cron.Cron, error) {
	if spec == "" {
		log.Println("[AUDIT-SCHEDULER] Disabled (AUDIT_SCHEDULE is empty)")
		return nil, nil
	}

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		log.Println("[AUDIT-SCHEDULER] Running enrollment consistency audit...")
		if _, err := AuditEnrollments(context.Background(), db); err != nil {
			log.Printf("[AUDIT-SCHEDULER] Audit failed: %v", err)
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	log.Printf("[AUDIT-SCHEDULER] Enrollment audit scheduled (%s)", spec)
	return c, nil
}

// AuditEnrollments reports course/user sets that disagree and duplicated
// progress records. It never writes.
func AuditEnrollments(ctx context.Context, db *gorm.DB) ([]EnrollmentMismatch, error) {
	db = db.WithContext(ctx)

	var courses []models.Course
	if err := db.Select("id", "students_enrolled").Order("id").Find(&courses).Error; err != nil {
		return nil, err
	}

	var users []models.User
	if err := db.Select("id", "courses").Order("id").Find(&users).Error; err != nil {
		return nil, err
	}

	usersByID := make(map[uint]*models.User, len(users))
	for i := range users {
		usersByID[users[i].ID] = &users[i]
	}
	coursesByID := make(map[uint]*models.Course, len(courses))
	for i := range courses {
		coursesByID[courses[i].ID] = &courses[i]
	}

	var mismatches []EnrollmentMismatch

	for _, course := range courses {
		for _, studentID := range course.StudentsEnrolled {
			if user, ok := usersByID[studentID]; !ok || !user.HasCourse(course.ID) {
				mismatches = append(mismatches, EnrollmentMismatch{
					Kind:     MismatchUserMissingCourse,
					UserID:   studentID,
					CourseID: course.ID,
				})
			}
		}
	}

	for _, user := range users {
		for _, courseID := range user.Courses {
			if course, ok := coursesByID[courseID]; !ok || !course.HasStudent(user.ID) {
				mismatches = append(mismatches, EnrollmentMismatch{
					Kind:     MismatchCourseMissingStudent,
					UserID:   user.ID,
					CourseID: courseID,
				})
			}
		}
	}

	var duplicates []struct {
		UserID   uint
		CourseID uint
		Count    int64
	}
	err := db.Model(&models.CourseProgress{}).
		Select("user_id, course_id, COUNT(*) AS count").
		Group("user_id, course_id").
		Having("COUNT(*) > 1").
		Order("user_id, course_id").
		Scan(&duplicates).Error
	if err != nil {
		return nil, err
	}
	for _, d := range duplicates {
		mismatches = append(mismatches, EnrollmentMismatch{
			Kind:     MismatchDuplicateProgress,
			UserID:   d.UserID,
			CourseID: d.CourseID,
			Count:    d.Count,
		})
	}

	for _, m := range mismatches {
		log.Printf("[AUDIT] %s user=%d course=%d count=%d", m.Kind, m.UserID, m.CourseID, m.Count)
	}
	log.Printf("[AUDIT] Found %d enrollment mismatches", len(mismatches))

	return mismatches, nil
}
