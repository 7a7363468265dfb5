package notification

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendyreports/trendyreports/internal/config"
	"github.com/trendyreports/trendyreports/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init(logger.Config{Level: "error", Format: "text"})
	defer logger.Sync()
	m.Run()
}

// mockNotifier captures sent events for assertions
type mockNotifier struct {
	mu     sync.Mutex
	events []*Event
	err    error
}

func (m *mockNotifier) Name() string { return "mock" }

func (m *mockNotifier) Send(_ context.Context, event *Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, event)
	return nil
}

func (m *mockNotifier) sent() []*Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.events
}

func newTestManager(cfg *config.NotificationConfig, n Notifier) *Manager {
	m := NewManager(cfg)
	m.mu.Lock()
	m.notifier = n
	m.mu.Unlock()
	return m
}

func TestManager_Notify_Disabled(t *testing.T) {
	mock := &mockNotifier{}
	m := newTestManager(&config.NotificationConfig{}, mock)

	err := m.Notify(context.Background(), &Event{Type: EventReportRendered, Timestamp: time.Now()})
	require.NoError(t, err)
	assert.Empty(t, mock.sent())
}

func TestManager_Notify_EventFiltering(t *testing.T) {
	cfg := &config.NotificationConfig{
		Channel: config.NotificationChannelSMTP,
		Events:  []config.NotificationEvent{config.NotificationEventReportFailed},
	}
	mock := &mockNotifier{}
	m := newTestManager(cfg, mock)

	ctx := context.Background()

	// Not in the events list, skipped without error
	err := m.Notify(ctx, &Event{Type: EventReportRendered, ReportID: "rpt-1", Timestamp: time.Now()})
	require.NoError(t, err)
	assert.Empty(t, mock.sent())

	// In the events list, delivered
	err = m.Notify(ctx, &Event{Type: EventReportFailed, ReportID: "rpt-2", Timestamp: time.Now()})
	require.NoError(t, err)
	require.Len(t, mock.sent(), 1)
	assert.Equal(t, "rpt-2", mock.sent()[0].ReportID)
}

func TestManager_Notify_SendError(t *testing.T) {
	cfg := &config.NotificationConfig{
		Channel: config.NotificationChannelSMTP,
		Events:  []config.NotificationEvent{config.NotificationEventLeadCreated},
	}
	mock := &mockNotifier{err: assert.AnError}
	m := newTestManager(cfg, mock)

	err := m.Notify(context.Background(), &Event{Type: EventLeadCreated, LeadID: "lead-1", Timestamp: time.Now()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send notification via mock")
}

func TestManager_Notify_NoNotifierForChannel(t *testing.T) {
	cfg := &config.NotificationConfig{
		Channel: config.NotificationChannel("pager"),
		Events:  []config.NotificationEvent{config.NotificationEventReportFailed},
	}
	m := NewManager(cfg)

	err := m.Notify(context.Background(), &Event{Type: EventReportFailed, Timestamp: time.Now()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no notifier configured")
}

func TestManager_UpdateConfig(t *testing.T) {
	m := NewManager(&config.NotificationConfig{})
	assert.False(t, m.IsEnabled())

	m.UpdateConfig(&config.NotificationConfig{
		Channel: config.NotificationChannelSMTP,
		Events:  []config.NotificationEvent{config.NotificationEventReportRendered},
	})
	assert.True(t, m.IsEnabled())

	m.mu.RLock()
	_, ok := m.notifier.(*SMTPNotifier)
	m.mu.RUnlock()
	assert.True(t, ok)
}

func TestManager_ChannelSelection(t *testing.T) {
	m := NewManager(&config.NotificationConfig{
		Channel:  config.NotificationChannelSendGrid,
		Events:   []config.NotificationEvent{config.NotificationEventLeadCreated},
		SendGrid: config.SendGridNotificationConfig{APIKey: "SG.test"},
	})

	m.mu.RLock()
	_, ok := m.notifier.(*SendGridNotifier)
	m.mu.RUnlock()
	assert.True(t, ok)
}

func TestConvenienceFunctions_NilManager(t *testing.T) {
	globalManager = nil

	ctx := context.Background()
	assert.NoError(t, NotifyReportRendered(ctx, "rpt-1", "market_snapshot", "Crestwood Falls", nil))
	assert.NoError(t, NotifyReportFailed(ctx, "rpt-1", "inventory", "Crestwood Falls", "boom", nil))
	assert.NoError(t, NotifyLeadCreated(ctx, "lead-1", "Crestwood Falls", nil))
}

func TestConvenienceFunctions_EventFields(t *testing.T) {
	ResetForTesting(&config.NotificationConfig{
		Channel: config.NotificationChannelSMTP,
		Events: []config.NotificationEvent{
			config.NotificationEventReportRendered,
			config.NotificationEventReportFailed,
			config.NotificationEventLeadCreated,
		},
	})
	mock := &mockNotifier{}
	globalManager.mu.Lock()
	globalManager.notifier = mock
	globalManager.mu.Unlock()
	defer func() { globalManager = nil }()

	ctx := context.Background()

	require.NoError(t, NotifyReportRendered(ctx, "rpt-1", "closed_sales", "Crestwood Falls", map[string]interface{}{"duration_ms": int64(1200)}))
	require.NoError(t, NotifyReportFailed(ctx, "rpt-2", "inventory", "Crestwood Falls", "backend timeout", nil))
	require.NoError(t, NotifyLeadCreated(ctx, "lead-1", "Crestwood Falls", nil))

	events := mock.sent()
	require.Len(t, events, 3)

	assert.Equal(t, EventReportRendered, events[0].Type)
	assert.Equal(t, "rpt-1", events[0].ReportID)
	assert.Equal(t, "closed_sales", events[0].ReportType)
	assert.Equal(t, "Crestwood Falls", events[0].City)
	assert.False(t, events[0].Timestamp.IsZero())

	assert.Equal(t, EventReportFailed, events[1].Type)
	assert.Equal(t, "backend timeout", events[1].ErrorMessage)

	assert.Equal(t, EventLeadCreated, events[2].Type)
	assert.Equal(t, "lead-1", events[2].LeadID)
}
