package gemini

import (
	"context"
	"log/slog"
	"os"
	"time"

	"google.golang.org/genai"
)

// Config for the Gemini analysis client.
type Config struct {
	APIKey          string        // if empty, falls back to env GEMINI_API_KEY
	Model           string        // e.g. "gemini-2.5-pro"
	Temperature     float32       // 0..2
	Timeout         time.Duration // http client timeout per call
	PollInterval    time.Duration // fixed readiness-poll interval
	MaxPollAttempts int           // poll budget before ErrPollTimeout
}

type Client struct {
	cfg    Config
	genai  *genai.Client
	logger *slog.Logger

	// getFile is the state-poll hook; replaced in tests.
	getFile func(ctx context.Context, name string) (*genai.File, error)
}

func (c *Config) applyDefaults() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.Model == "" {
		c.Model = "gemini-2.5-pro"
	}
	if c.Timeout <= 0 {
		c.Timeout = 2 * time.Minute
	}
	if c.PollInterval <= 0 {
		c.PollInterval = 5 * time.Second
	}
	if c.MaxPollAttempts <= 0 {
		c.MaxPollAttempts = 60
	}
}
