package config

import (
	"os"
	"strings"
)

type Config struct {
	Port           string
	Environment    string   // ENV: production, development, etc.
	PostgresURI    string   // empty: use the JSON file store
	FeedbackFile   string   // path for the file-backed store
	ResendAPIKey   string   // empty: welcome emails disabled
	EmailFrom      string
	AdminAPIKey    string   // empty: admin routes are open (warned at startup)
	AllowedOrigins []string // CORS: from ALLOWED_ORIGINS or FRONTEND_URL
}

func Load() *Config {
	env := strings.ToLower(strings.TrimSpace(getEnv("ENV", "development")))

	allowedOrigins := parseOrigins(getEnv("ALLOWED_ORIGINS", ""))
	if len(allowedOrigins) == 0 {
		if u := strings.TrimSpace(getEnv("FRONTEND_URL", "")); u != "" {
			allowedOrigins = append(allowedOrigins, u)
		}
	}
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    env,
		PostgresURI:    getEnv("POSTGRES_URI", ""),
		FeedbackFile:   getEnv("FEEDBACK_FILE", "data/feedback.json"),
		ResendAPIKey:   getEnv("RESEND_API_KEY", ""),
		EmailFrom:      getEnv("EMAIL_FROM", "Togetai <connect@togetai.com>"),
		AdminAPIKey:    getEnv("ADMIN_API_KEY", ""),
		AllowedOrigins: allowedOrigins,
	}
}

func parseOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
