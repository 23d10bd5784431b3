package config

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Store backends understood by STORE_BACKEND
const (
	StoreBackendPostgres = "postgres"
	StoreBackendMemory   = "memory"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port        string
	Environment string

	// Record store
	StoreBackend string
	DatabaseURL  string

	// JWT
	JWTSecret    string
	JWTExpiresIn string

	// Session
	SessionSecret string

	// Security
	CookieSecure string

	// GCP Storage
	GCPBucketName                string
	GoogleApplicationCredentials string

	// Firebase Cloud Messaging
	FCMTopic string

	// Razorpay
	RazorpayKeyID     string
	RazorpayKeySecret string
	PaymentCurrency   string

	// Allowed Origins
	AllowedOrigins string
}

var AppConfig *Config

// LoadConfig loads environment variables into Config struct
func LoadConfig() *Config {
	// Load .env file if it exists (optional in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Port:                         getEnv("PORT", "5500"),
		Environment:                  getEnv("NODE_ENV", "development"),
		StoreBackend:                 strings.ToLower(getEnv("STORE_BACKEND", StoreBackendPostgres)),
		DatabaseURL:                  getEnv("DATABASE_URL", ""),
		JWTSecret:                    getEnv("JWT_SECRET", ""),
		JWTExpiresIn:                 getEnv("JWT_EXPIRES_IN", "7d"),
		SessionSecret:                getEnv("SESSION_SECRET", ""),
		CookieSecure:                 getEnv("COOKIE_SECURE", "false"),
		GCPBucketName:                getEnv("GCP_BUCKET_NAME", ""),
		GoogleApplicationCredentials: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		FCMTopic:                     getEnv("FCM_TOPIC", "inventory-alerts"),
		RazorpayKeyID:                getEnv("RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret:            getEnv("RAZORPAY_KEY_SECRET", ""),
		PaymentCurrency:              getEnv("PAYMENT_CURRENCY", "INR"),
		AllowedOrigins:               getEnv("ALLOWED_ORIGINS", ""),
	}

	return AppConfig
}

// Validate reports the required settings that are missing
func (c *Config) Validate() error {
	var errs []error
	switch c.StoreBackend {
	case StoreBackendPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required"))
		}
	case StoreBackendMemory:
	default:
		errs = append(errs, errors.New("STORE_BACKEND must be postgres or memory"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	return errors.Join(errs...)
}

// SessionKey returns the cookie-store key, falling back to the JWT secret
func (c *Config) SessionKey() []byte {
	if c.SessionSecret != "" {
		return []byte(c.SessionSecret)
	}
	return []byte(c.JWTSecret)
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsProduction returns true if running in production mode
func IsProduction() bool {
	return AppConfig != nil && AppConfig.Environment == "production"
}

// IsDevelopment returns true if running in development mode
func IsDevelopment() bool {
	return AppConfig == nil || AppConfig.Environment == "development" || AppConfig.Environment == ""
}
