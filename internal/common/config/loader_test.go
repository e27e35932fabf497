// internal/common/config/loader_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Validation Tests
// ==========================

func validTestConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "bad server port",
			mutate:  func(cfg *Config) { cfg.Server.Port = 70000 },
			wantErr: "server.port",
		},
		{
			name:    "unknown milestone backend",
			mutate:  func(cfg *Config) { cfg.Storage.MilestoneBackend = "dynamo" },
			wantErr: "milestone_backend",
		},
		{
			name: "redis backend requires address",
			mutate: func(cfg *Config) {
				cfg.Storage.MilestoneBackend = "redis"
				cfg.Storage.Redis.Address = ""
			},
			wantErr: "storage.redis.address",
		},
		{
			name: "redis backend with address is valid",
			mutate: func(cfg *Config) {
				cfg.Storage.MilestoneBackend = "redis"
				cfg.Storage.Redis.Address = "localhost:6379"
			},
		},
		{
			name:    "ses requires from email",
			mutate:  func(cfg *Config) { cfg.Integrations.AWS.SES.Enabled = true },
			wantErr: "from_email",
		},
		{
			name:    "malformed genai base url",
			mutate:  func(cfg *Config) { cfg.APIs.GenAI.BaseURL = "api.openai.com" },
			wantErr: "apis.genai.base_url",
		},
		{
			name:   "http genai base url is valid",
			mutate: func(cfg *Config) { cfg.APIs.GenAI.BaseURL = "http://localhost:11434" },
		},
		{
			name:    "malformed engagebay base url",
			mutate:  func(cfg *Config) { cfg.Integrations.EngageBay.BaseURL = "not a url" },
			wantErr: "engagebay.base_url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "launch-assistant", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "file", cfg.Storage.MilestoneBackend)
	assert.Equal(t, "data/strategies.json", cfg.Data.StrategiesPath)
	assert.Equal(t, "gpt-4", cfg.APIs.GenAI.Model)
	assert.Equal(t, 2, cfg.APIs.GenAI.MaxRetries)
	assert.Equal(t, "info", cfg.Logging.Level)
}
