package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string

	TodosTable     string
	TodosUserIndex string

	ImagesBucket        string
	SignedURLExpiration time.Duration

	JWTSecret string

	AWSRegion          string
	AWSEndpoint        string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
}

// Load reads the process configuration from the environment, with a local
// .env file picked up when present.
func Load() *Config {
	godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		TodosTable:     getEnv("TODOS_TABLE", "todos"),
		TodosUserIndex: getEnv("TODOS_USER_INDEX", "todos-user-index"),

		ImagesBucket:        getEnv("TODO_IMAGES_S3_BUCKET", ""),
		SignedURLExpiration: time.Duration(getEnvInt("SIGNED_URL_EXPIRATION", 300)) * time.Second,

		JWTSecret: getEnv("JWT_SECRET", ""),

		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSEndpoint:        getEnv("AWS_ENDPOINT", ""),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
	}
}

func getEnv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}

	return fallback
}
