package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ServiceName identifies this deployment in health checks and emails
const ServiceName = "Coder Fest 2025 Registration"

var (
	// Server
	ServerPort    string
	PublicBaseURL string
	ClientUrl     string

	// Shared anonymous API key presented by the site on every request
	PublicApiKey string

	// Admin dashboard
	AdminPassword string
	JWTSecret     string

	// Redis (registration record store)
	RedisHost     string
	RedisPort     string
	RedisPassword string

	// Payment proof storage
	StorageDir      string
	FileSigningKey  string
	SignedURLMaxAge time.Duration

	// Mail
	MailHost     string
	MailPort     string
	MailUsername string
	MailPassword string
	MailFrom     string
	// MailCoordinator receives a copy of every confirmation and all contact messages
	MailCoordinator string

	// Event details rendered into confirmation emails
	EventDate      string
	EventVenue     string
	EventOrganizer string
)

// Init loads the .env file if present and populates the exported variables
func Init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	ServerPort = getEnv("SERVER_PORT", "8080")
	PublicBaseURL = getEnv("PUBLIC_BASE_URL", "http://localhost:"+ServerPort)
	ClientUrl = getEnv("CLIENT_URL", "http://localhost:5173")

	PublicApiKey = getEnv("PUBLIC_API_KEY", "")

	AdminPassword = getEnv("ADMIN_PASSWORD", "")
	JWTSecret = getEnv("JWT_SECRET", "")

	RedisHost = getEnv("REDIS_HOST", "localhost")
	RedisPort = getEnv("REDIS_PORT", "6379")
	RedisPassword = getEnv("REDIS_PASSWORD", "")

	StorageDir = getEnv("STORAGE_DIR", "./data/payments")
	FileSigningKey = getEnv("FILE_SIGNING_KEY", "")
	SignedURLMaxAge = getDurationEnv("SIGNED_URL_MAX_AGE_DAYS", 365)

	MailHost = getEnv("MAIL_HOST", "")
	MailPort = getEnv("MAIL_PORT", "587")
	MailUsername = getEnv("MAIL_USERNAME", "")
	MailPassword = getEnv("MAIL_PASSWORD", "")
	MailFrom = getEnv("MAIL_FROM", "Coder Fest 2025 <noreply@coderfest.in>")
	MailCoordinator = getEnv("MAIL_COORDINATOR", "")

	EventDate = getEnv("EVENT_DATE", "7 December 2025")
	EventVenue = getEnv("EVENT_VENUE", "SGSIT College, Indore")
	EventOrganizer = getEnv("EVENT_ORGANIZER", "ABVP Mahanagar Indore")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallbackDays int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if days, err := strconv.Atoi(value); err == nil && days > 0 {
			return time.Duration(days) * 24 * time.Hour
		}
		log.Printf("Invalid value for %s, using default of %d days", key, fallbackDays)
	}
	return time.Duration(fallbackDays) * 24 * time.Hour
}
