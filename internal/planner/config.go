// internal/planner/config.go
package planner

import (
	"time"

	"launch-assistant/internal/common/config"
)

type Config struct {
	GenAIBaseURL string
	APIKey       string
	Model        string
	Timeout      time.Duration
	MaxRetries   int
	MaxTokens    int
	Temperature  float64
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		GenAIBaseURL: cfg.APIs.GenAI.BaseURL,
		APIKey:       cfg.APIs.GenAI.APIKey,
		Model:        cfg.APIs.GenAI.Model,
		Timeout:      time.Duration(cfg.APIs.GenAI.Timeout) * time.Millisecond,
		MaxRetries:   cfg.APIs.GenAI.MaxRetries,
		MaxTokens:    cfg.APIs.GenAI.MaxTokens,
		Temperature:  cfg.APIs.GenAI.Temperature,
	}
}
