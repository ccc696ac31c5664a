package config

import (
	"os"
	"strconv"

	"insighta/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	AI     AIConfig
	Server ServerConfig `validate:"required"`
	Upload UploadConfig
}

// AIConfig holds AI/LLM related settings. An empty API key is allowed;
// the chat assistant degrades gracefully when unconfigured.
type AIConfig struct {
	AnthropicKey string
	Model        string `validate:"required"`
	MaxTokens    int
	TimeoutMS    int
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string `validate:"required"`
	GinMode string
}

// UploadConfig holds file ingestion settings
type UploadConfig struct {
	MaxSizeMB int
	TempDir   string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		AI:     loadAIConfig(),
		Server: loadServerConfig(),
		Upload: loadUploadConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadAIConfig() AIConfig {
	return AIConfig{
		AnthropicKey: os.Getenv("ANTHROPIC_API_KEY"),
		Model:        getEnvOrDefault("LLM_MODEL", "claude-sonnet-4-20250514"),
		MaxTokens:    getEnvIntOrDefault("MAX_TOKENS", 1500),
		TimeoutMS:    getEnvIntOrDefault("LLM_TIMEOUT_MS", 60000),
	}
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "debug"),
	}
}

func loadUploadConfig() UploadConfig {
	return UploadConfig{
		MaxSizeMB: getEnvIntOrDefault("UPLOAD_MAX_MB", 32),
		TempDir:   getEnvOrDefault("UPLOAD_TEMP_DIR", ""),
	}
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.AI.Model == "" {
		return errors.ConfigInvalid("LLM model is required")
	}
	if config.AI.MaxTokens <= 0 {
		return errors.ConfigInvalid("MAX_TOKENS must be positive")
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
