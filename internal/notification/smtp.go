package notification

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"github.com/trendyreports/trendyreports/internal/config"
	"github.com/trendyreports/trendyreports/pkg/logger"
)

// SMTPNotifier sends notifications via plain SMTP email
type SMTPNotifier struct {
	config *config.SMTPNotificationConfig
}

// NewSMTPNotifier creates a new SMTP notifier
func NewSMTPNotifier(cfg *config.SMTPNotificationConfig) *SMTPNotifier {
	return &SMTPNotifier{
		config: cfg,
	}
}

// Name returns the notifier name
func (s *SMTPNotifier) Name() string {
	return "smtp"
}

// Send sends an email notification
func (s *SMTPNotifier) Send(ctx context.Context, event *Event) error {
	if s.config.Host == "" {
		return fmt.Errorf("SMTP host is not configured")
	}
	if len(s.config.To) == 0 {
		return fmt.Errorf("no recipient email addresses configured")
	}
	if s.config.From == "" {
		return fmt.Errorf("sender email address is not configured")
	}

	subject := buildSubject(event)
	body := buildBody(event)
	msg := s.buildMessage(subject, body)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	logger.Debug("Sending email notification",
		zap.String("smtp_host", s.config.Host),
		zap.Int("smtp_port", s.config.Port),
		zap.Strings("to", s.config.To),
	)

	var auth smtp.Auth
	if s.config.Username != "" && s.config.Password != "" {
		auth = smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	}

	// Port 465 expects an implicit TLS connection; other ports use the
	// standard SendMail path which negotiates STARTTLS when offered.
	var err error
	if s.config.Port == 465 {
		err = s.sendWithTLS(addr, auth, msg)
	} else {
		err = smtp.SendMail(addr, auth, s.config.From, s.config.To, []byte(msg))
	}

	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	logger.Debug("Email notification sent successfully",
		zap.Strings("recipients", s.config.To),
	)

	return nil
}

// sendWithTLS sends email over an implicit TLS connection (port 465)
func (s *SMTPNotifier) sendWithTLS(addr string, auth smtp.Auth, msg string) error {
	tlsConfig := &tls.Config{
		ServerName: s.config.Host,
		MinVersion: tls.VersionTLS12,
	}

	conn, err := tls.Dial("tcp", addr, tlsConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server with TLS: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Close()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP authentication failed: %w", err)
		}
	}

	if err := client.Mail(s.config.From); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}

	for _, to := range s.config.To {
		if err := client.Rcpt(to); err != nil {
			return fmt.Errorf("failed to set recipient %s: %w", to, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open data writer: %w", err)
	}

	_, err = w.Write([]byte(msg))
	if err != nil {
		return fmt.Errorf("failed to write email body: %w", err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	return client.Quit()
}

// buildMessage builds the complete SMTP message with headers
func (s *SMTPNotifier) buildMessage(subject, body string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("From: %s\r\n", s.config.From))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(s.config.To, ", ")))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(body)

	return sb.String()
}
