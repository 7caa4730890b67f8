package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Auth
	JWTSecret   string
	AdminAPIKey string
	TokenTTL    time.Duration

	// Server
	ServerPort     string
	RequestTimeout time.Duration
}

// Load loads configuration from environment variables. The JWT secret
// and the admin API key have no defaults; startup fails without them.
func Load() (*Config, error) {
	// Try to load .env file (optional for local development)
	_ = godotenv.Load()

	config := &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "railbook"),
		DBName:     getEnv("DB_NAME", "railbook"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		JWTSecret:   os.Getenv("JWT_SECRET"),
		AdminAPIKey: os.Getenv("ADMIN_API_KEY"),
		TokenTTL:    getEnvDuration("TOKEN_TTL", time.Hour),

		ServerPort:     getEnv("SERVER_PORT", "8080"),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 5*time.Second),
	}

	if config.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}
	if config.AdminAPIKey == "" {
		return nil, errors.New("ADMIN_API_KEY must be set")
	}

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
