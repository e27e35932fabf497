// internal/email/config.go
package email

import (
	"fmt"

	"launch-assistant/internal/common/config"
)

type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	UseTLS       bool
	DefaultFrom  string

	SESEnabled   bool
	SESFromEmail string
	AWSRegion    string
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		SMTPHost:     cfg.Integrations.SMTP.Host,
		SMTPPort:     cfg.Integrations.SMTP.Port,
		SMTPUsername: cfg.Integrations.SMTP.Username,
		SMTPPassword: cfg.Integrations.SMTP.Password,
		UseTLS:       cfg.Integrations.SMTP.UseTLS,
		DefaultFrom:  cfg.Integrations.SMTP.DefaultFrom,

		SESEnabled:   cfg.Integrations.AWS.SES.Enabled,
		SESFromEmail: cfg.Integrations.AWS.SES.FromEmail,
		AWSRegion:    cfg.Integrations.AWS.Region,
	}
}

func (c *Config) Validate() error {
	if c.SESEnabled {
		if c.SESFromEmail == "" {
			return fmt.Errorf("ses from_email is required when ses is enabled")
		}
		return nil
	}
	if c.SMTPHost == "" {
		return fmt.Errorf("smtp_host is required")
	}
	if c.SMTPPort <= 0 || c.SMTPPort > 65535 {
		return fmt.Errorf("smtp_port must be between 1 and 65535")
	}
	if c.DefaultFrom == "" {
		return fmt.Errorf("default_from email is required")
	}
	return nil
}
