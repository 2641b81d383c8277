package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Gemini GeminiConfig
	Batch  BatchConfig
}

// GeminiConfig holds inference-service configuration
type GeminiConfig struct {
	APIKey          string
	Model           string
	Temperature     float32
	Timeout         time.Duration
	PollInterval    time.Duration
	MaxPollAttempts int
}

// BatchConfig holds batch-driver configuration
type BatchConfig struct {
	OutputDirName string
	RequestPause  time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Gemini: GeminiConfig{
			APIKey:          getEnv("GEMINI_API_KEY", ""),
			Model:           getEnv("GEMINI_MODEL", "gemini-2.5-pro"),
			Temperature:     getEnvAsFloat32("GEMINI_TEMPERATURE", 0.0),
			Timeout:         getEnvAsDuration("GEMINI_TIMEOUT", 2*time.Minute),
			PollInterval:    getEnvAsDuration("GEMINI_POLL_INTERVAL", 5*time.Second),
			MaxPollAttempts: getEnvAsInt("GEMINI_MAX_POLL_ATTEMPTS", 60),
		},
		Batch: BatchConfig{
			OutputDirName: getEnv("ANALYSIS_OUTPUT_DIR", "analysis_output"),
			RequestPause:  getEnvAsDuration("REQUEST_PAUSE", time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "GEMINI_API_KEY is required", ErrInvalidInput)
	}
	if c.Gemini.PollInterval <= 0 {
		return NewAppError("CONFIG_ERROR", "GEMINI_POLL_INTERVAL must be positive", ErrInvalidInput)
	}
	if c.Gemini.MaxPollAttempts <= 0 {
		return NewAppError("CONFIG_ERROR", "GEMINI_MAX_POLL_ATTEMPTS must be positive", ErrInvalidInput)
	}
	return nil
}
