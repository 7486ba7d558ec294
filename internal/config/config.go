package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Auth       AuthConfig
	CatalogAPI CatalogAPIConfig
	Tracing    TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	ProgressTopic      string
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	JwtSecret      string
	JwtExpiresHour int
}

type CatalogAPIConfig struct {
	BaseURL    string
	Key        string
	TimeoutSec int
	CacheTTL   int
}

type TracingConfig struct {
	Enabled bool
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (a AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.JwtExpiresHour) * time.Hour
}

func (c CatalogAPIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

func (c CatalogAPIConfig) CacheDuration() time.Duration {
	return time.Duration(c.CacheTTL) * time.Second
}

// Enabled reports whether a remote catalog is configured.
func (c CatalogAPIConfig) Enabled() bool {
	return c.BaseURL != "" && c.Key != ""
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "5000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			NatsURL:            getEnv("NATS_URL", ""),
			ProgressTopic:      getEnv("PROGRESS_TOPIC_NAME", "PROGRESS_UPDATED"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JwtSecret:      getEnv("JWT_SECRET", ""),
			JwtExpiresHour: getEnvAsInt("JWT_EXPIRES_HOURS", 24),
		},
		CatalogAPI: CatalogAPIConfig{
			BaseURL:    getEnv("SUPABASE_URL", ""),
			Key:        getEnv("SUPABASE_KEY", ""),
			TimeoutSec: getEnvAsInt("CATALOG_API_TIMEOUT_SECONDS", 10),
			CacheTTL:   getEnvAsInt("CATALOG_CACHE_TTL_SECONDS", 300),
		},
		Tracing: TracingConfig{
			Enabled: getEnvAsBool("OTEL_ENABLED", false),
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

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
