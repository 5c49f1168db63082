package config

import (
	"errors"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	DefaultCountry     string
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	JwtSecret      string
	TokenTTLHours  int
	SessionEnabled bool
}

type AIConfig struct {
	EmbeddingProvider string // "openrouter" or "ollama"
	OpenRouterAPIKey  string
	GroqAPIKey        string
	GroqBaseURL       string // empty means the public Groq endpoint
	OllamaBaseURL     string
	OllamaModel       string
	LLMProvider       string // "groq" or "ollama"
	LLMModel          string
}

// Validate rejects configurations that would run with insecure or broken
// defaults. Called at startup so misconfiguration fails fast instead of
// surfacing as rejected tokens at request time.
func (c *Config) Validate() error {
	if c.Auth.JwtSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	return nil
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	cfg := &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			DefaultCountry:     getEnv("CORPUS_COUNTRY", "ghana"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JwtSecret:      getEnv("JWT_SECRET", ""),
			TokenTTLHours:  getEnvAsInt("JWT_TTL_HOURS", 24),
			SessionEnabled: getEnv("SESSION_GUARD_ENABLED", "true") == "true",
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "openrouter"),
			OpenRouterAPIKey:  getEnv("OPENROUTER_API_KEY", ""),
			GroqAPIKey:        getEnv("GROQ_API_KEY", ""),
			GroqBaseURL:       getEnv("GROQ_BASE_URL", ""),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:       getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:       getEnv("LLM_PROVIDER", "groq"),
			LLMModel:          getEnv("LLM_MODEL", "llama-3.3-70b-versatile"),
		},
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
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
