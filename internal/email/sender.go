// internal/email/sender.go
package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	stderrors "launch-assistant/internal/common/errors"
	"launch-assistant/internal/common/logger"
	"launch-assistant/internal/common/metrics"
	"launch-assistant/internal/common/validation"
	"launch-assistant/internal/models"
)

// Provider delivers one rendered email. SMTP is the canonical transport; SES
// is selected by configuration.
type Provider interface {
	Name() string
	Send(ctx context.Context, from, to, subject, htmlBody string) (string, error)
}

// Service renders and delivers plan emails through the configured provider.
type Service struct {
	config   *Config
	provider Provider
	logger   logger.Logger
}

func NewService(config *Config, provider Provider, log logger.Logger) *Service {
	return &Service{
		config:   config,
		provider: provider,
		logger:   log,
	}
}

// SendPlan delivers the launch plan email. Delivery failure is returned to
// the caller as a non-fatal condition to surface; the plan itself is already
// generated and displayed.
func (s *Service) SendPlan(ctx context.Context, to, firstName string, plan *models.Plan) error {
	if !validation.ValidateEmail(to) {
		return stderrors.NewValidationFailedError(fmt.Sprintf("invalid recipient address: %s", to))
	}

	from := s.fromAddress()
	body := RenderPlanHTML(firstName, plan)

	messageID, err := s.provider.Send(ctx, from, to, PlanSubject, body)
	if err != nil {
		metrics.EmailsSent.WithLabelValues("failure", s.provider.Name()).Inc()
		s.logger.Error("Failed to send plan email", map[string]interface{}{
			"to":       to,
			"provider": s.provider.Name(),
			"error":    err.Error(),
		})
		return stderrors.NewEmailSendFailedError(err)
	}

	metrics.EmailsSent.WithLabelValues("success", s.provider.Name()).Inc()
	s.logger.Info("Plan email sent", map[string]interface{}{
		"to":        to,
		"provider":  s.provider.Name(),
		"messageId": messageID,
	})
	return nil
}

func (s *Service) fromAddress() string {
	if s.config.SESEnabled && s.config.SESFromEmail != "" {
		return s.config.SESFromEmail
	}
	return s.config.DefaultFrom
}

// SMTPProvider sends mail over plain SMTP or STARTTLS.
type SMTPProvider struct {
	config *Config
}

func NewSMTPProvider(config *Config) *SMTPProvider {
	return &SMTPProvider{config: config}
}

func (p *SMTPProvider) Name() string { return "smtp" }

func (p *SMTPProvider) Send(ctx context.Context, from, to, subject, htmlBody string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("context cancelled before sending email: %w", err)
	}

	message := p.buildMessage(from, to, subject, htmlBody)
	addr := fmt.Sprintf("%s:%d", p.config.SMTPHost, p.config.SMTPPort)

	var auth smtp.Auth
	if p.config.SMTPUsername != "" && p.config.SMTPPassword != "" {
		auth = smtp.PlainAuth("", p.config.SMTPUsername, p.config.SMTPPassword, p.config.SMTPHost)
	}

	var err error
	if p.config.UseTLS {
		err = p.sendWithTLS(addr, auth, from, []string{to}, []byte(message))
	} else {
		err = smtp.SendMail(addr, auth, from, []string{to}, []byte(message))
	}
	if err != nil {
		return "", err
	}

	return p.generateMessageID(to), nil
}

func (p *SMTPProvider) buildMessage(from, to, subject, htmlBody string) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("From: Moxie Launch Assistant <%s>\r\n", from))
	builder.WriteString(fmt.Sprintf("To: %s\r\n", to))
	builder.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	builder.WriteString("MIME-Version: 1.0\r\n")
	builder.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	builder.WriteString("\r\n")
	builder.WriteString(htmlBody)

	return builder.String()
}

func (p *SMTPProvider) sendWithTLS(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer client.Close()

	tlsConfig := &tls.Config{
		ServerName:         p.config.SMTPHost,
		InsecureSkipVerify: false,
	}
	if err = client.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	if auth != nil {
		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP authentication failed: %w", err)
		}
	}

	if err = client.Mail(from); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	for _, rcpt := range to {
		if err = client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("failed to set recipient %s: %w", rcpt, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open data writer: %w", err)
	}
	if _, err = w.Write(msg); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	return client.Quit()
}

func (p *SMTPProvider) generateMessageID(to string) string {
	timestamp := time.Now().UnixNano()
	return fmt.Sprintf("<%d.%s@%s>", timestamp, sanitizeEmail(to), p.config.SMTPHost)
}

func sanitizeEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) > 0 {
		local := strings.Map(func(r rune) rune {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
				return r
			}
			return -1
		}, parts[0])

		if len(local) > 10 {
			local = local[:10]
		}
		return local
	}
	return "user"
}
