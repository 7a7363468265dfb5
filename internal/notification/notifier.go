// Package notification dispatches report lifecycle and lead capture alerts.
// It supports SMTP and SendGrid delivery channels selected via configuration.
package notification

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/trendyreports/trendyreports/internal/config"
	"github.com/trendyreports/trendyreports/pkg/logger"
)

// EventType represents the type of notification event
type EventType string

const (
	// EventReportRendered is triggered when a report renders successfully
	EventReportRendered EventType = "report_rendered"
	// EventReportFailed is triggered when report rendering fails
	EventReportFailed EventType = "report_failed"
	// EventLeadCreated is triggered when a new lead is captured
	EventLeadCreated EventType = "lead_created"
)

// Event represents a notification event with context information
type Event struct {
	// Type is the event type (report_rendered, report_failed, lead_created)
	Type EventType `json:"type"`
	// ReportID is the identifier of the report, if the event concerns one
	ReportID string `json:"report_id,omitempty"`
	// ReportType is the report kind (market_snapshot, inventory, ...)
	ReportType string `json:"report_type,omitempty"`
	// City is the market the report or lead relates to
	City string `json:"city,omitempty"`
	// LeadID is the identifier of the captured lead, for lead events
	LeadID string `json:"lead_id,omitempty"`
	// ErrorMessage is the error that caused a failure event
	ErrorMessage string `json:"error_message,omitempty"`
	// Timestamp is when the event occurred
	Timestamp time.Time `json:"timestamp"`
	// Extra contains additional context-specific information
	Extra map[string]interface{} `json:"extra,omitempty"`
}

// Notifier is the interface that all notification channels must implement
type Notifier interface {
	// Name returns the name of the notifier (e.g., "smtp", "sendgrid")
	Name() string
	// Send sends a notification for the given event
	Send(ctx context.Context, event *Event) error
}

// Manager holds the configured notification channel and dispatches events.
type Manager struct {
	mu       sync.RWMutex
	cfg      *config.NotificationConfig
	notifier Notifier
}

// globalManager is the singleton manager instance
var (
	globalManager *Manager
	managerOnce   sync.Once
)

// NewManager creates a new notification manager for the given configuration.
func NewManager(cfg *config.NotificationConfig) *Manager {
	m := &Manager{cfg: cfg}
	m.initNotifier()
	return m
}

// Init initializes the global notification manager.
func Init(cfg *config.NotificationConfig) {
	managerOnce.Do(func() {
		globalManager = NewManager(cfg)
		if globalManager.notifier != nil {
			logger.Info("Notification manager initialized",
				zap.String("channel", string(cfg.Channel)),
				zap.Int("events_count", len(cfg.Events)),
			)
		} else {
			logger.Info("Notification manager initialized (disabled)")
		}
	})
}

// GetManager returns the global notification manager
func GetManager() *Manager {
	return globalManager
}

// ResetForTesting replaces the global manager so tests can re-initialize
// with different configurations.
func ResetForTesting(cfg *config.NotificationConfig) {
	globalManager = NewManager(cfg)
}

// initNotifier initializes the channel implementation from the current config.
// Must be called with write lock held (or before the manager is shared).
func (m *Manager) initNotifier() {
	m.notifier = nil
	if m.cfg == nil || !m.cfg.IsEnabled() {
		return
	}

	switch m.cfg.Channel {
	case config.NotificationChannelSMTP:
		m.notifier = NewSMTPNotifier(&m.cfg.SMTP)
	case config.NotificationChannelSendGrid:
		m.notifier = NewSendGridNotifier(&m.cfg.SendGrid)
	default:
		logger.Warn("Unknown notification channel",
			zap.String("channel", string(m.cfg.Channel)),
		)
	}
}

// UpdateConfig swaps the notification configuration at runtime and
// reinitializes the channel implementation.
func (m *Manager) UpdateConfig(cfg *config.NotificationConfig) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cfg = cfg
	m.initNotifier()

	if cfg != nil && cfg.IsEnabled() {
		logger.Info("Notification configuration updated",
			zap.String("channel", string(cfg.Channel)),
		)
	} else {
		logger.Info("Notifications disabled")
	}
}

// IsEnabled returns true if notifications are enabled.
func (m *Manager) IsEnabled() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg != nil && m.cfg.IsEnabled()
}

// Notify sends a notification for the given event.
// Events not present in the configured event list are skipped silently.
func (m *Manager) Notify(ctx context.Context, event *Event) error {
	m.mu.RLock()
	cfg := m.cfg
	notifier := m.notifier
	m.mu.RUnlock()

	if cfg == nil || !cfg.IsEnabled() {
		logger.Debug("Notifications disabled, skipping",
			zap.String("event_type", string(event.Type)),
		)
		return nil
	}

	if !cfg.HasEvent(config.NotificationEvent(event.Type)) {
		logger.Debug("Event type not in notification list, skipping",
			zap.String("event_type", string(event.Type)),
		)
		return nil
	}

	if notifier == nil {
		logger.Warn("No notifier configured")
		return fmt.Errorf("no notifier configured for channel: %s", cfg.Channel)
	}

	logger.Info("Sending notification",
		zap.String("channel", notifier.Name()),
		zap.String("event_type", string(event.Type)),
		zap.String("report_id", event.ReportID),
	)

	if err := notifier.Send(ctx, event); err != nil {
		logger.Error("Failed to send notification",
			zap.String("channel", notifier.Name()),
			zap.String("event_type", string(event.Type)),
			zap.Error(err),
		)
		return fmt.Errorf("failed to send notification via %s: %w", notifier.Name(), err)
	}

	logger.Info("Notification sent successfully",
		zap.String("channel", notifier.Name()),
		zap.String("event_type", string(event.Type)),
	)

	return nil
}

// NotifyReportRendered is a convenience function to notify about successful renders
func NotifyReportRendered(ctx context.Context, reportID, reportType, city string, extra map[string]interface{}) error {
	if globalManager == nil {
		return nil
	}

	event := &Event{
		Type:       EventReportRendered,
		ReportID:   reportID,
		ReportType: reportType,
		City:       city,
		Timestamp:  time.Now(),
		Extra:      extra,
	}

	return globalManager.Notify(ctx, event)
}

// NotifyReportFailed is a convenience function to notify about render failures
func NotifyReportFailed(ctx context.Context, reportID, reportType, city, errorMsg string, extra map[string]interface{}) error {
	if globalManager == nil {
		return nil
	}

	event := &Event{
		Type:         EventReportFailed,
		ReportID:     reportID,
		ReportType:   reportType,
		City:         city,
		ErrorMessage: errorMsg,
		Timestamp:    time.Now(),
		Extra:        extra,
	}

	return globalManager.Notify(ctx, event)
}

// NotifyLeadCreated is a convenience function to notify about captured leads
func NotifyLeadCreated(ctx context.Context, leadID, city string, extra map[string]interface{}) error {
	if globalManager == nil {
		return nil
	}

	event := &Event{
		Type:      EventLeadCreated,
		LeadID:    leadID,
		City:      city,
		Timestamp: time.Now(),
		Extra:     extra,
	}

	return globalManager.Notify(ctx, event)
}
