package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	Dify    DifyConfig
	Sheet   SheetConfig
	Keys    APIKeys
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	SheetLogFilePath   string
	CorsAllowedOrigins string
	StaticDir          string
	NatsURL            string
	RedisURL           string
}

type StorageConfig struct {
	DataDir      string
	SessionStore string // "memory" or "redis"
}

type DifyConfig struct {
	APIKey  string
	ChatURL string
	Timeout time.Duration
}

type SheetConfig struct {
	WebhookURL string
	Timeout    time.Duration
}

type APIKeys struct {
	AdminJwtSecret string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			SheetLogFilePath:   getEnv("SHEET_LOG_FILE_PATH", "logs/sheet.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			StaticDir:          getEnv("STATIC_DIR", "static"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Storage: StorageConfig{
			DataDir:      getEnv("DATA_DIR", "backend/data"),
			SessionStore: getEnv("SESSION_STORE", "memory"),
		},
		Dify: DifyConfig{
			APIKey:  getEnv("DIFY_API_KEY", ""),
			ChatURL: getEnv("DIFY_CHAT_URL", "https://api.dify.ai/v1/chat-messages"),
			Timeout: time.Duration(getEnvAsInt("DIFY_TIMEOUT_SECONDS", 90)) * time.Second,
		},
		Sheet: SheetConfig{
			WebhookURL: getEnv("SHEET_WEBHOOK_URL", ""),
			Timeout:    time.Duration(getEnvAsInt("SHEET_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Keys: APIKeys{
			AdminJwtSecret: getEnv("ADMIN_JWT_SECRET", ""),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
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
