package config

import (
	"os"
	"strconv"
	"time"

	"github.com/lpernett/godotenv"
)

type Config struct {
	ServerPort string
	MongoURI   string
	DBName     string
	JWTSecret  string
	TokenTTL   time.Duration
	LogLevel   string
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		MongoURI:   getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:     getEnv("DB_NAME", "devlink"),
		JWTSecret:  getEnv("JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:   getDurationHours("TOKEN_TTL_HOURS", 24),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	val, exists := os.LookupEnv(key)

	if exists {
		return val
	}

	return fallback
}

func getDurationHours(key string, fallback int) time.Duration {
	hours := fallback
	if raw, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			hours = parsed
		}
	}
	return time.Duration(hours) * time.Hour
}
