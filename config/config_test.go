package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "SMTP_PORT", "MAIL_PROVIDER", "ENROLLMENT_REDIRECT", "MAIL_FROM_NAME"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, "smtp", cfg.MailProvider)
	assert.Equal(t, "/enrollment-success", cfg.EnrollmentRedirect)
	assert.Equal(t, "StudyNotion", cfg.MailFromName)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("MAIL_PROVIDER", "sendgrid")

	cfg := FromEnv()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 2525, cfg.SMTPPort)
	assert.Equal(t, "sendgrid", cfg.MailProvider)
}

func TestFromEnv_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-port")

	assert.Equal(t, 587, FromEnv().SMTPPort)
}

func TestFromEnv_EmptyAuditScheduleDisables(t *testing.T) {
	t.Setenv("AUDIT_SCHEDULE", "")

	assert.Equal(t, "", FromEnv().AuditSchedule)
}
