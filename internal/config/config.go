package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	PORT           string
	DB_HOST        string
	DB_PORT        string
	DB_USER        string
	DB_PASSWORD    string
	DB_NAME        string
	JWT_SECRET     string
	ADMIN_PASSWORD string
	KAFKA_ADDRESS  string
	ES_URL         string
	ES_USER        string
	ES_PASSWORD    string
	LOG_LEVEL      string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		PORT:           getEnv("PORT", "3001"),
		DB_HOST:        getEnv("DB_HOST", "localhost"),
		DB_PORT:        getEnv("DB_PORT", "5432"),
		DB_USER:        getEnv("DB_USER", "postgres"),
		DB_PASSWORD:    getEnv("DB_PASSWORD", ""),
		DB_NAME:        getEnv("DB_NAME", "aishwarya_xerox"),
		JWT_SECRET:     getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		ADMIN_PASSWORD: getEnv("ADMIN_PASSWORD", "xerox123"),
		KAFKA_ADDRESS:  getEnv("KAFKA_ADDRESS", ""),
		ES_URL:         getEnv("ES_URL", ""),
		ES_USER:        getEnv("ES_USER", ""),
		ES_PASSWORD:    getEnv("ES_PASSWORD", ""),
		LOG_LEVEL:      getEnv("LOG_LEVEL", "info"),
	}

	return config, nil
}

// DSN builds the postgres connection string for the configured database.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DB_USER, c.DB_PASSWORD, c.DB_HOST, c.DB_PORT, c.DB_NAME,
	)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
