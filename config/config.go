package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port string
	Env  string

	DBDriver       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	DBMaxOpenConns int
	DBMaxIdleConns int

	AdminAPIKey       string
	AdminAPIKeyBcrypt string

	MailProvider     string
	ResendAPIKey     string
	SendGridAPIKey   string
	SMTPHost         string
	SMTPPort         string
	SMTPUsername     string
	SMTPPassword     string
	MailFromReviews  string
	MailFromBookings string
	NotifyTo         string
	MailTimeout      time.Duration

	CORSAllowAll    bool
	FrontendOrigins []string
}

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	cfg := &Config{
		Port: getEnv("PORT", "8000"),
		Env:  getEnv("APP_ENV", "development"),

		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DBHost:         getEnv("DB_HOST", getEnv("PGHOST", "localhost")),
		DBPort:         getEnv("DB_PORT", getEnv("PGPORT", "5432")),
		DBUser:         getEnv("DB_USER", getEnv("PGUSER", "postgres")),
		DBPassword:     getEnv("DB_PASSWORD", getEnv("PGPASSWORD", "postgres")),
		DBName:         getEnv("DB_NAME", getEnv("PGDATABASE", "postgres")),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),

		AdminAPIKey:       os.Getenv("ADMIN_API_KEY"),
		AdminAPIKeyBcrypt: os.Getenv("ADMIN_API_KEY_BCRYPT"),

		MailProvider:     strings.ToLower(getEnv("MAIL_PROVIDER", "resend")),
		ResendAPIKey:     os.Getenv("RESEND_API_KEY"),
		SendGridAPIKey:   os.Getenv("SENDGRID_API_KEY"),
		SMTPHost:         getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:         getEnv("SMTP_PORT", "587"),
		SMTPUsername:     os.Getenv("SMTP_USERNAME"),
		SMTPPassword:     os.Getenv("SMTP_PASSWORD"),
		MailFromReviews:  getEnv("MAIL_FROM_REVIEWS", getEnv("RESEND_FROM", "Portfolio Reviews <noreply@resend.dev>")),
		MailFromBookings: getEnv("MAIL_FROM_BOOKINGS", getEnv("RESEND_FROM", "Portfolio Bookings <noreply@resend.dev>")),
		NotifyTo:         os.Getenv("NOTIFY_TO"),
		MailTimeout:      time.Duration(getEnvInt("MAIL_TIMEOUT_SECONDS", 15)) * time.Second,

		CORSAllowAll:    getEnvBool("CORS_ALLOW_ALL", true),
		FrontendOrigins: getEnvList("FRONTEND_ORIGIN", []string{"http://localhost:5173"}),
	}

	// Validate critical configuration
	if cfg.AdminAPIKey == "" && cfg.AdminAPIKeyBcrypt == "" {
		log.Println("Warning: ADMIN_API_KEY is not set. All delete requests will be rejected.")
	}
	if cfg.NotifyTo == "" {
		log.Println("Warning: NOTIFY_TO is not set. Submission emails are disabled.")
	}

	return cfg
}

// IsProduction reports whether APP_ENV selects production behaviour
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
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

// getEnvBool accepts the usual strconv spellings plus "1"/"0"
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
