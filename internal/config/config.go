package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Chatbot  ChatbotConfig
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	SessionBackend     string // "memory", "redis" or "postgres"
	LeadTopic          string
	StaffEmail         string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type ChatbotConfig struct {
	SessionTimeoutMinutes int
	MaxMessagesPerWindow  int
	RateWindowMinutes     int
}

type AIConfig struct {
	BaseURL      string
	APIKey       string
	Model        string
	MaxTokens    int
	Temperature  float64
	MaxRetries   int
	RetryDelayMs int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			SessionBackend:     getEnv("SESSION_BACKEND", "postgres"),
			LeadTopic:          getEnv("LEAD_CAPTURED_TOPIC_NAME", "LEAD_CAPTURED"),
			StaffEmail:         getEnv("STAFF_NOTIFY_EMAIL", "info@dsa.az"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "Academy Chatbot"),
		},
		Chatbot: ChatbotConfig{
			SessionTimeoutMinutes: getEnvAsInt("CHATBOT_SESSION_TIMEOUT_MINUTES", 30),
			MaxMessagesPerWindow:  getEnvAsInt("CHATBOT_MAX_MESSAGES", 20),
			RateWindowMinutes:     getEnvAsInt("CHATBOT_RATE_WINDOW_MINUTES", 60),
		},
		Ai: AIConfig{
			BaseURL:      getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			APIKey:       getEnv("OPENAI_API_KEY", ""),
			Model:        getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			MaxTokens:    getEnvAsInt("OPENAI_MAX_TOKENS", 500),
			Temperature:  getEnvAsFloat("OPENAI_TEMPERATURE", 0.3),
			MaxRetries:   getEnvAsInt("OPENAI_MAX_RETRIES", 3),
			RetryDelayMs: getEnvAsInt("OPENAI_RETRY_DELAY_MS", 1000),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
