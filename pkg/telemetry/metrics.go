// Package telemetry provides OpenTelemetry integration for the application.
package telemetry

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/trendyreports/trendyreports/pkg/logger"
)

const (
	// MeterName is the default meter name for the application
	MeterName = "github.com/trendyreports/trendyreports"
)

// Metrics holds all application metrics
type Metrics struct {
	// Render metrics
	RendersTotal   metric.Int64Counter
	RenderDuration metric.Float64Histogram
	RenderSize     metric.Int64Histogram

	// Export metrics
	ExportsTotal   metric.Int64Counter
	ExportDuration metric.Float64Histogram

	// Delivery metrics
	DeliveriesTotal metric.Int64Counter

	// Lead capture metrics
	LeadsTotal metric.Int64Counter

	// HTTP metrics
	HTTPRequestsTotal   metric.Int64Counter
	HTTPRequestDuration metric.Float64Histogram
}

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// GetMetrics returns the global metrics instance, initializing it if necessary
func GetMetrics() *Metrics {
	metricsOnce.Do(func() {
		var err error
		globalMetrics, err = initMetrics()
		if err != nil {
			logger.Error("Failed to initialize metrics", zap.Error(err))
			// Return empty metrics to avoid nil pointer
			globalMetrics = &Metrics{}
		}
	})
	return globalMetrics
}

// initMetrics initializes all application metrics
func initMetrics() (*Metrics, error) {
	meter := otel.Meter(MeterName)
	m := &Metrics{}

	var err error

	m.RendersTotal, err = meter.Int64Counter(
		"trendyreports_renders_total",
		metric.WithDescription("Total number of report renders"),
		metric.WithUnit("{render}"),
	)
	if err != nil {
		return nil, err
	}

	m.RenderDuration, err = meter.Float64Histogram(
		"trendyreports_render_duration_seconds",
		metric.WithDescription("Duration of report renders in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1),
	)
	if err != nil {
		return nil, err
	}

	m.RenderSize, err = meter.Int64Histogram(
		"trendyreports_render_size_bytes",
		metric.WithDescription("Size of rendered HTML documents in bytes"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	m.ExportsTotal, err = meter.Int64Counter(
		"trendyreports_exports_total",
		metric.WithDescription("Total number of report exports"),
		metric.WithUnit("{export}"),
	)
	if err != nil {
		return nil, err
	}

	m.ExportDuration, err = meter.Float64Histogram(
		"trendyreports_export_duration_seconds",
		metric.WithDescription("Duration of report exports in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120),
	)
	if err != nil {
		return nil, err
	}

	m.DeliveriesTotal, err = meter.Int64Counter(
		"trendyreports_deliveries_total",
		metric.WithDescription("Total number of report email deliveries"),
		metric.WithUnit("{delivery}"),
	)
	if err != nil {
		return nil, err
	}

	m.LeadsTotal, err = meter.Int64Counter(
		"trendyreports_leads_total",
		metric.WithDescription("Total number of captured leads"),
		metric.WithUnit("{lead}"),
	)
	if err != nil {
		return nil, err
	}

	m.HTTPRequestsTotal, err = meter.Int64Counter(
		"trendyreports_http_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	m.HTTPRequestDuration, err = meter.Float64Histogram(
		"trendyreports_http_request_duration_seconds",
		metric.WithDescription("Duration of HTTP requests in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10),
	)
	if err != nil {
		return nil, err
	}

	logger.Info("Metrics initialized successfully")
	return m, nil
}

// RecordRender records a completed report render
func (m *Metrics) RecordRender(ctx context.Context, reportType string, sizeBytes int, durationSeconds float64) {
	if m.RendersTotal != nil {
		m.RendersTotal.Add(ctx, 1,
			metric.WithAttributes(attribute.String("report_type", reportType)),
		)
	}
	if m.RenderDuration != nil {
		m.RenderDuration.Record(ctx, durationSeconds,
			metric.WithAttributes(attribute.String("report_type", reportType)),
		)
	}
	if m.RenderSize != nil {
		m.RenderSize.Record(ctx, int64(sizeBytes),
			metric.WithAttributes(attribute.String("report_type", reportType)),
		)
	}
}

// RecordExport records a report export
func (m *Metrics) RecordExport(ctx context.Context, format string, success bool, durationSeconds float64) {
	if m.ExportsTotal != nil {
		m.ExportsTotal.Add(ctx, 1,
			metric.WithAttributes(
				attribute.String("format", format),
				attribute.Bool("success", success),
			),
		)
	}
	if m.ExportDuration != nil {
		m.ExportDuration.Record(ctx, durationSeconds,
			metric.WithAttributes(attribute.String("format", format)),
		)
	}
}

// RecordDelivery records a report email delivery attempt
func (m *Metrics) RecordDelivery(ctx context.Context, channel string, success bool) {
	if m.DeliveriesTotal == nil {
		return
	}
	m.DeliveriesTotal.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("channel", channel),
			attribute.Bool("success", success),
		),
	)
}

// RecordLead records a captured lead
func (m *Metrics) RecordLead(ctx context.Context, source string) {
	if m.LeadsTotal == nil {
		return
	}
	m.LeadsTotal.Add(ctx, 1,
		metric.WithAttributes(attribute.String("source", source)),
	)
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(ctx context.Context, method, path string, statusCode int, durationSeconds float64) {
	if m.HTTPRequestsTotal != nil {
		m.HTTPRequestsTotal.Add(ctx, 1,
			metric.WithAttributes(
				attribute.String("method", method),
				attribute.String("path", path),
				attribute.Int("status_code", statusCode),
			),
		)
	}
	if m.HTTPRequestDuration != nil {
		m.HTTPRequestDuration.Record(ctx, durationSeconds,
			metric.WithAttributes(
				attribute.String("method", method),
				attribute.String("path", path),
			),
		)
	}
}
