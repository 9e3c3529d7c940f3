package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	// Chapa secret is optional on purpose: a blank or placeholder key puts
	// the gateway client into the local test-mode bypass.
	CHAPA_SECRET_KEY string

	APP_URL     string
	API_URL     string
	CORS_ORIGIN string

	ADMIN_EMAIL         string
	ADMIN_PASSWORD_HASH string

	UPLOAD_DIR string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	CHAPA_SECRET_KEY = getEnv("CHAPA_SECRET_KEY", "")

	APP_URL = getEnv("APP_URL", "http://localhost:5173")
	API_URL = getEnv("API_URL", "http://localhost:"+PORT)
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:5173")

	ADMIN_EMAIL = getEnv("ADMIN_EMAIL", "")
	ADMIN_PASSWORD_HASH = getEnv("ADMIN_PASSWORD_HASH", "")

	UPLOAD_DIR = getEnv("UPLOAD_DIR", "uploads")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
