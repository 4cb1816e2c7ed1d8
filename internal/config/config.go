package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingJWTSecret is returned by Load when no signing secret is configured.
var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")

// Config holds application configuration
type Config struct {
	// Server
	Env               string
	Port              string
	CORSAllowedOrigin string

	// Database
	DatabaseURL    string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	DBQueryTimeout time.Duration

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// AI assistant
	GeminiAPIKey     string
	GeminiModel      string
	GeminiBaseURL    string
	AIRequestTimeout time.Duration
}

// Load loads configuration from environment variables. A missing JWT secret
// is a configuration error: the server must not start without one.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Env:               getEnv("ENV", "development"),
		Port:              getEnv("PORT", "8080"),
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),

		// Database
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "baletrack"),
		DBPassword:  getEnv("DB_PASSWORD", "baletrack"),
		DBName:      getEnv("DB_NAME", "baletrack"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),

		// JWT
		JWTSecret: getEnv("JWT_SECRET", ""),

		// AI assistant
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.5-pro"),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", ""),
	}

	if config.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	config.JWTExpirationDur = getDuration("JWT_EXPIRES_IN", 24*time.Hour)
	config.DBQueryTimeout = getDuration("DB_QUERY_TIMEOUT", 10*time.Second)
	config.AIRequestTimeout = getDuration("AI_REQUEST_TIMEOUT", 60*time.Second)

	return config, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration parses a duration variable, falling back to the default on
// absence or parse failure.
func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, defaultValue)
		return defaultValue
	}
	return d
}
