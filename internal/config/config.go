package config

import (
	"os"
	"strconv"
)

type Config struct {
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	JWTSecret       string
	TokenTTLHours   int
	ServerPort      string
	OpenAIKey       string
	OpenAIURL       string
	OpenAIModel     string
	VotingWindowSec int
	ChatTurns       int
	UploadDir       string
}

func Load() *Config {
	return &Config{
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", "postgres"),
		DBName:          getEnv("DB_NAME", "mesagame"),
		JWTSecret:       getEnv("JWT_SECRET", "super-secret-key-change-me"),
		TokenTTLHours:   getEnvInt("TOKEN_TTL_HOURS", 24),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		OpenAIKey:       getEnv("OPENAI_API_KEY", ""),
		OpenAIURL:       getEnv("OPENAI_API_URL", "https://api.openai.com/v1"),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4"),
		VotingWindowSec: getEnvInt("VOTING_WINDOW_SEC", 30),
		ChatTurns:       getEnvInt("CHAT_TURNS", 1),
		UploadDir:       getEnv("UPLOAD_DIR", "./uploads"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
