package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the CropGuard service
type Config struct {
	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Server configuration
	Port string

	// Upload configuration
	UploadDir         string
	MaxUploadSizeMB   int
	RateLimitPerMin   int

	// Weather API configuration
	WeatherAPIURL     string
	WeatherTimeoutSec int

	// SendGrid configuration (empty API key = demo mode, nothing is sent)
	SendGridAPIKey    string
	SendGridFromName  string
	SendGridFromEmail string
}

// Load loads configuration from environment variables
func Load() *Config {
	config := &Config{
		// Database defaults
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "server"),
		DBPassword: getEnv("DB_PASSWORD", "secret"),
		DBName:     getEnv("DB_NAME", "cropguard"),

		// Server defaults
		Port: getEnv("PORT", "5000"),

		// Upload defaults
		UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadSizeMB: getIntEnv("MAX_UPLOAD_SIZE_MB", 5),
		RateLimitPerMin: getIntEnv("RATE_LIMIT_PER_MIN", 30),

		// Weather defaults
		WeatherAPIURL:     getEnv("WEATHER_API_URL", "https://api.open-meteo.com/v1/forecast"),
		WeatherTimeoutSec: getIntEnv("WEATHER_TIMEOUT_SEC", 10),

		// SendGrid defaults
		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "CropGuard"),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", "alerts@cropguard.app"),
	}

	return config
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnv gets an integer environment variable or returns a default value
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
