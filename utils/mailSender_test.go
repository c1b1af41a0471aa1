package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studynotion/config"
)

func TestNewMailer(t *testing.T) {
	cfg := &config.Config{
		SMTPHost:       "smtp.example.com",
		SMTPPort:       2525,
		EmailSender:    "no-reply@studynotion.com",
		Password:       "secret",
		SendGridAPIKey: "SG.key",
		MailFromName:   "StudyNotion",
	}

	t.Run("smtp", func(t *testing.T) {
		cfg.MailProvider = "smtp"
		m, err := NewMailer(cfg)
		require.NoError(t, err)

		smtpMailer, ok := m.(*SMTPMailer)
		require.True(t, ok)
		assert.Equal(t, "smtp.example.com", smtpMailer.Dialer.Host)
		assert.Equal(t, 2525, smtpMailer.Dialer.Port)
		assert.Equal(t, "no-reply@studynotion.com", smtpMailer.From)
	})

	t.Run("sendgrid", func(t *testing.T) {
		cfg.MailProvider = "sendgrid"
		m, err := NewMailer(cfg)
		require.NoError(t, err)

		sgMailer, ok := m.(*SendGridMailer)
		require.True(t, ok)
		assert.NotNil(t, sgMailer.Client)
		assert.Equal(t, "StudyNotion", sgMailer.FromName)
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg.MailProvider = "pigeon"
		_, err := NewMailer(cfg)

		assert.EqualError(t, err, `unsupported MAIL_PROVIDER "pigeon"`)
	})
}
