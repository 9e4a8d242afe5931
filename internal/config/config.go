package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Config is the process configuration, read once from the environment
// in main. A .env file is honored when present (godotenv, loaded by the
// caller before New).
type Config struct {
	HTTPAddr      string
	JWTSecret     string
	JWTTTLHours   int
	BcryptCost    int
	CORSOrigins   []string
	AMQPURL       string
	AMQPExchange  string
	LogLevel      string
	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

func New() (*Config, error) {
	cfg := &Config{
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTTTLHours:   getEnvInt("JWT_TTL_HOURS", 24),
		BcryptCost:    getEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
		AMQPURL:       os.Getenv("RABBITMQ_URI"),
		AMQPExchange:  os.Getenv("RABBITMQ_EXCHANGE"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@quizarena.fr"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	origins := getEnv("CORS_ORIGINS", "http://localhost:3000")
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.AdminPassword == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD is required")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
