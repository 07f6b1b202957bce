package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	BindAddress string // host:port the HTTP server listens on
	AutoMigrate bool   // run goose migrations on startup

	JWTSecret string // Secret key for JWT token signing
	JWTTTL    int    // JWT token expiration time in hours
	JWTIssuer string

	RedisURL string // optional, empty disables caching

	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSRegion          string
	S3Bucket           string
	S3Endpoint         string // optional, for S3-compatible stores (MinIO, localstack)

	KafkaBrokers       []string // optional, empty disables activity events
	KafkaActivityTopic string

	RateLimitRPS       float64 // Rate limit for general API endpoints (requests per second)
	RateLimitBurst     int     // Burst size for rate limiting
	RateLimitAuthRPS   float64 // Rate limit for login/register (stricter)
	RateLimitAuthBurst int     // Burst size for login/register

	MaxUploadBytes  int64
	ShutdownTimeout time.Duration
	MetricsAppLabel string
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		BindAddress:        getEnv("BIND_ADDRESS", "127.0.0.1:8080"),
		AutoMigrate:        getEnvBool("AUTO_MIGRATE", true),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		JWTTTL:             getEnvInt("JWT_TTL_HOURS", 168), // 7 days
		JWTIssuer:          getEnv("JWT_ISSUER", "fitbyte"),
		RedisURL:           getEnv("REDIS_URL", ""),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSRegion:          getEnv("AWS_REGION", "ap-southeast-1"),
		S3Bucket:           getEnv("AWS_S3_BUCKET", ""),
		S3Endpoint:         getEnv("AWS_S3_ENDPOINT", ""),
		KafkaBrokers:       splitAndTrim(getEnv("KAFKA_BROKERS", "")),
		KafkaActivityTopic: getEnv("KAFKA_ACTIVITY_TOPIC", "activity_events"),
		RateLimitRPS:       getEnvFloat("RATE_LIMIT_RPS", 50),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 100),
		RateLimitAuthRPS:   getEnvFloat("RATE_LIMIT_AUTH_RPS", 10),
		RateLimitAuthBurst: getEnvInt("RATE_LIMIT_AUTH_BURST", 20),
		MaxUploadBytes:     int64(getEnvInt("MAX_UPLOAD_BYTES", 100*1024)),
		ShutdownTimeout:    getEnvDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
		MetricsAppLabel:    getEnv("METRICS_APP_LABEL", "fitbyte"),
	}
}

// Validate reports the first missing setting the server cannot start without.
func (c *Config) Validate() error {
	switch {
	case c.DatabaseURL == "":
		return errors.New("DATABASE_URL must be set")
	case c.JWTSecret == "":
		return errors.New("JWT_SECRET must be set")
	case c.S3Bucket == "":
		return errors.New("AWS_S3_BUCKET must be set")
	case c.JWTTTL <= 0:
		return errors.New("JWT_TTL_HOURS must be positive")
	case c.MaxUploadBytes <= 0:
		return errors.New("MAX_UPLOAD_BYTES must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
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
