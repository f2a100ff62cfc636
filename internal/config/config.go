package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultSessionTTL = 7 * 24 * time.Hour

type Config struct {
	Port                 string
	DBUrl                string
	AppEnv               string
	AuthPortalURL        string
	AuthRedirectURL      string
	IdentityProviderURL  string
	SessionTTL           time.Duration
	SessionSweepInterval time.Duration
	KafkaBrokers         []string
	BookingEventsTopic   string
	CORSAllowOrigins     string
	EnableMetrics        bool
	EnableDocs           bool
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	dbURL, exists := os.LookupEnv("DB_URL")
	if !exists || dbURL == "" {
		return nil, fmt.Errorf("DB_URL is required")
	}

	sessionTTL := getEnvDuration("SESSION_TTL", defaultSessionTTL)
	if sessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive")
	}

	return &Config{
		Port:                 getEnv("PORT", "8001"),
		DBUrl:                dbURL,
		AppEnv:               normalizeEnv(getEnv("APP_ENV", "production")),
		AuthPortalURL:        getEnv("AUTH_PORTAL_URL", "https://auth.emergentagent.com"),
		AuthRedirectURL:      getEnv("AUTH_REDIRECT_URL", "http://localhost:3000/profile"),
		IdentityProviderURL:  getEnv("IDENTITY_PROVIDER_URL", "https://demobackend.emergentagent.com/auth/v1/env/oauth"),
		SessionTTL:           sessionTTL,
		SessionSweepInterval: getEnvDuration("SESSION_SWEEP_INTERVAL", 0),
		KafkaBrokers:         splitAndTrim(getEnv("KAFKA_BROKERS", "")),
		BookingEventsTopic:   getEnv("BOOKING_EVENTS_TOPIC", "academy.bookings"),
		CORSAllowOrigins:     getEnv("CORS_ALLOW_ORIGINS", "*"),
		EnableMetrics:        getEnvBool("ENABLE_METRICS", true),
		EnableDocs:           getEnvBool("ENABLE_API_DOCS", false),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

// getEnvDuration accepts Go duration strings ("168h", "15m") or a bare
// number of seconds.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return fallback
	}
	value = strings.TrimSpace(value)
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if seconds := getEnvInt(key, -1); seconds >= 0 {
		return time.Duration(seconds) * time.Second
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}

func (c *Config) IsDevelopment() bool {
	return c != nil && c.AppEnv == "development"
}

// DocsEnabled keeps the API reference off outside development.
func (c *Config) DocsEnabled() bool {
	return c.IsDevelopment() && c.EnableDocs
}

// EventsEnabled reports whether booking events should go to Kafka.
func (c *Config) EventsEnabled() bool {
	return c != nil && len(c.KafkaBrokers) > 0 && c.BookingEventsTopic != ""
}

