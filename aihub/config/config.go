package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr          string
	BackendURL    string
	BackendAPIKey string
	GeminiAPIKey  string
	GeminiBaseURL string
	Model         string
	JWTSecret     string
	AgentsFile    string
	DefaultLocale string
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return Config{
		Addr:          getEnv("ADDR", ":8000"),
		BackendURL:    getEnv("BACKEND_URL", ""),
		BackendAPIKey: getEnv("BACKEND_API_KEY", ""),
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		Model:         getEnv("MODEL", "gemini-2.5-flash"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		AgentsFile:    getEnv("AGENTS_FILE", ""),
		DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}
