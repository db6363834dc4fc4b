package config

import (
	"os"
	"strconv"
	"time"

	"watermetal/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	AI     AIConfig     `validate:"required"`
	Server ServerConfig `validate:"required"`
	Data   DataConfig   `validate:"required"`
}

// AIConfig holds AI/LLM related settings. The OpenAI key is optional: without
// it the dashboard still runs, only the assistant degrades to its warning
// message.
type AIConfig struct {
	OpenAIKey     string
	Model         string `validate:"required"`
	SystemContext string
	MaxTokens     int
	Temperature   float64
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port       string `validate:"required"`
	SessionTTL time.Duration
}

// DataConfig holds upload handling settings
type DataConfig struct {
	MaxUploadMB int64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{}

	config.AI = *loadAIConfig()
	config.Server = *loadServerConfig()
	config.Data = *loadDataConfig()

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadAIConfig() *AIConfig {
	return &AIConfig{
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		Model:         getEnvOrDefault("LLM_MODEL", "gpt-4o"),
		SystemContext: "You are an environmental scientist.",
		MaxTokens:     getEnvIntOrDefault("MAX_TOKENS", 700),
		Temperature:   getEnvFloatOrDefault("TEMPERATURE", 1.0),
	}
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:       getEnvOrDefault("PORT", "8080"),
		SessionTTL: getEnvDurationOrDefault("SESSION_TTL", 2*time.Hour),
	}
}

func loadDataConfig() *DataConfig {
	return &DataConfig{
		MaxUploadMB: int64(getEnvIntOrDefault("MAX_UPLOAD_MB", 50)),
	}
}

func validateConfig(config *Config) error {
	if config.AI.Model == "" {
		return errors.ConfigInvalid("LLM model is required")
	}
	if config.AI.MaxTokens <= 0 {
		return errors.ConfigInvalid("MAX_TOKENS must be positive")
	}
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Server.SessionTTL <= 0 {
		return errors.ConfigInvalid("SESSION_TTL must be positive")
	}
	if config.Data.MaxUploadMB <= 0 {
		return errors.ConfigInvalid("MAX_UPLOAD_MB must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
