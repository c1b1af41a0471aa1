package utils

import (
	"fmt"
	"log"

	"studynotion/config"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"gopkg.in/gomail.v2"
)

// Mailer sends a single HTML email
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// Mail is the process-wide sender, set in main from configuration
var Mail Mailer

// NewMailer picks the transport named by cfg.MailProvider
func NewMailer(cfg *config.Config) (Mailer, error) {
	switch cfg.MailProvider {
	case "smtp":
		return &SMTPMailer{
			Dialer:   gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailSender, cfg.Password),
			From:     cfg.EmailSender,
			FromName: cfg.MailFromName,
		}, nil
	case "sendgrid":
		return &SendGridMailer{
			Client:   sendgrid.NewSendClient(cfg.SendGridAPIKey),
			From:     cfg.EmailSender,
			FromName: cfg.MailFromName,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported MAIL_PROVIDER %q", cfg.MailProvider)
	}
}

// SMTPMailer sends through an SMTP relay
type SMTPMailer struct {
	Dialer   *gomail.Dialer
	From     string
	FromName string
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.From, m.FromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	log.Printf("[MAIL] Sending %q to %s via SMTP", subject, to)

	if err := m.Dialer.DialAndSend(msg); err != nil {
		log.Printf("[MAIL] Failed to send email to %s: %v", to, err)
		return err
	}

	log.Printf("[MAIL] Email sent successfully to %s", to)
	return nil
}

// SendGridMailer sends through the SendGrid v3 API
type SendGridMailer struct {
	Client   *sendgrid.Client
	From     string
	FromName string
}

func (m *SendGridMailer) Send(to, subject, htmlBody string) error {
	message := sgmail.NewSingleEmail(
		sgmail.NewEmail(m.FromName, m.From),
		subject,
		sgmail.NewEmail("", to),
		"",
		htmlBody,
	)

	log.Printf("[MAIL] Sending %q to %s via SendGrid", subject, to)

	resp, err := m.Client.Send(message)
	if err != nil {
		log.Printf("[MAIL] Failed to send email to %s: %v", to, err)
		return err
	}
	if resp.StatusCode >= 300 {
		log.Printf("[MAIL] SendGrid rejected email to %s: %d %s", to, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid: unexpected status %d", resp.StatusCode)
	}

	log.Printf("[MAIL] Email sent successfully to %s", to)
	return nil
}
