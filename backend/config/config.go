package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver   string // postgres or sqlite
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	SQLitePath string
	JWTSecret  string
	ServerPort string

	GeminiAPIKey    string
	GeminiQuizModel string
	GeminiChatModel string
	ProviderTimeout time.Duration
	QuizQuestions   int
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "education_tutor"),
		SQLitePath: getEnv("SQLITE_PATH", "education_tutor.db"),
		JWTSecret:  getEnv("JWT_SECRET", "secret"),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiQuizModel: getEnv("GEMINI_QUIZ_MODEL", "gemini-2.5-pro"),
		GeminiChatModel: getEnv("GEMINI_CHAT_MODEL", "gemini-2.5-flash"),
		ProviderTimeout: getDuration("PROVIDER_TIMEOUT", 30*time.Second),
		QuizQuestions:   getInt("QUIZ_QUESTIONS", 5),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
