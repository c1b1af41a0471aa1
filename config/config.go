package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port string

	DBDriver   string // postgres, mysql, sqlite
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBPath     string // sqlite only

	JWTKey string

	MailProvider   string // smtp, sendgrid
	SMTPHost       string
	SMTPPort       int
	EmailSender    string
	Password       string // SMTP Password
	SendGridAPIKey string
	MailFromName   string

	EnrollmentRedirect string
	AuditSchedule      string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = FromEnv()

	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.MailProvider == "smtp" && AppConfig.EmailSender == "" {
		log.Println("Warning: EMAIL_SENDER is empty. Enrollment emails will fail to send.")
	}
	if AppConfig.MailProvider == "sendgrid" && AppConfig.SendGridAPIKey == "" {
		log.Println("Warning: SENDGRID_API_KEY is empty. Enrollment emails will fail to send.")
	}
}

// FromEnv builds a Config from the current process environment.
func FromEnv() *Config {
	return &Config{
		Port: getEnv("PORT", "3000"),

		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", ""),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "studynotion"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBPath:     getEnv("DB_PATH", "studynotion.db"),

		JWTKey: getEnv("JWT_SECRET_KEY", "defaultSecret"),

		MailProvider:   getEnv("MAIL_PROVIDER", "smtp"),
		SMTPHost:       getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:       getEnvInt("SMTP_PORT", 587),
		EmailSender:    getEnv("EMAIL_SENDER", ""),
		Password:       getEnv("PASSWORD", ""),
		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		MailFromName:   getEnv("MAIL_FROM_NAME", "StudyNotion"),

		EnrollmentRedirect: getEnv("ENROLLMENT_REDIRECT", "/enrollment-success"),
		AuditSchedule:      getEnvAllowEmpty("AUDIT_SCHEDULE", "0 3 * * *"),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAllowEmpty is getEnv for keys where an explicitly empty value means "off"
func getEnvAllowEmpty(key, defaultValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
