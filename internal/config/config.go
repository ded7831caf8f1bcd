package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Credential store
	CredDBPath string

	// Backends
	GeminiModel  string
	OpenAIModel  string
	GeminiAPIKey string // optional seed, upserted into the store at boot
	OpenAIAPIKey string // optional seed

	// Generation
	RequestTimeoutSeconds int
	MaxAttempts           int
	RetryBaseDelayMS      int
	ConcurrentGenerations int

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:                  getEnvOrDefault("PORT", "8080"),
		Env:                   getEnvOrDefault("ENV", "development"),
		CredDBPath:            getEnvOrDefault("CRED_DB_PATH", "./credentials.db"),
		GeminiModel:           getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		OpenAIModel:           getEnvOrDefault("OPENAI_MODEL", "gpt-4o"),
		GeminiAPIKey:          getEnvOrDefault("GEMINI_API_KEY", ""),
		OpenAIAPIKey:          getEnvOrDefault("OPENAI_API_KEY", ""),
		RequestTimeoutSeconds: getEnvAsIntOrDefault("REQUEST_TIMEOUT_SECONDS", 60),
		MaxAttempts:           getEnvAsIntOrDefault("MAX_GENERATION_ATTEMPTS", 3),
		RetryBaseDelayMS:      getEnvAsIntOrDefault("RETRY_BASE_DELAY_MS", 1500),
		ConcurrentGenerations: getEnvAsIntOrDefault("CONCURRENT_GENERATIONS", 4),
		FrontendURL:           getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
	}

	return cfg
}

func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

func (c *Config) RetryBaseDelay() time.Duration {
	return time.Duration(c.RetryBaseDelayMS) * time.Millisecond
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
