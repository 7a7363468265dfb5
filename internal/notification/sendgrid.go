package notification

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/trendyreports/trendyreports/internal/config"
	"github.com/trendyreports/trendyreports/pkg/logger"
)

// SendGridNotifier sends notifications via the SendGrid API
type SendGridNotifier struct {
	config *config.SendGridNotificationConfig
	client *sendgrid.Client
}

// NewSendGridNotifier creates a new SendGrid notifier
func NewSendGridNotifier(cfg *config.SendGridNotificationConfig) *SendGridNotifier {
	return &SendGridNotifier{
		config: cfg,
		client: sendgrid.NewSendClient(cfg.APIKey),
	}
}

// Name returns the notifier name
func (s *SendGridNotifier) Name() string {
	return "sendgrid"
}

// Send sends an email notification through SendGrid
func (s *SendGridNotifier) Send(ctx context.Context, event *Event) error {
	if s.config.APIKey == "" {
		return fmt.Errorf("SendGrid API key is not configured")
	}
	if len(s.config.To) == 0 {
		return fmt.Errorf("no recipient email addresses configured")
	}
	if s.config.From == "" {
		return fmt.Errorf("sender email address is not configured")
	}

	fromName := s.config.FromName
	if fromName == "" {
		fromName = "TrendyReports"
	}
	from := mail.NewEmail(fromName, s.config.From)

	message := mail.NewV3Mail()
	message.SetFrom(from)
	message.Subject = buildSubject(event)

	p := mail.NewPersonalization()
	for _, to := range s.config.To {
		p.AddTos(mail.NewEmail(to, to))
	}
	message.AddPersonalizations(p)
	message.AddContent(mail.NewContent("text/plain", buildBody(event)))

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email via SendGrid: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("SendGrid returned status %d: %s", response.StatusCode, response.Body)
	}

	logger.Debug("SendGrid notification sent",
		zap.Int("status_code", response.StatusCode),
		zap.Strings("to", s.config.To),
	)

	return nil
}
