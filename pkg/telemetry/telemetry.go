// Package telemetry wires OpenTelemetry tracing and metrics into the
// service. Traces go to an OTLP collector, metrics are scraped from a
// Prometheus endpoint; both are optional and default to off.
package telemetry

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"
	"go.uber.org/zap"

	"github.com/trendyreports/trendyreports/consts"
	"github.com/trendyreports/trendyreports/pkg/logger"
)

const (
	exporterDialTimeout   = 10 * time.Second
	metricsServerTimeout  = 10 * time.Second
	defaultPrometheusPort = 9090
)

// Config holds the telemetry configuration
type Config struct {
	// Enabled enables/disables telemetry
	Enabled bool `yaml:"enabled"`
	// ServiceName overrides the service name reported on spans and metrics
	ServiceName string `yaml:"service_name"`
	// OTLP configuration for trace export
	OTLP OTLPConfig `yaml:"otlp"`
	// Prometheus configuration for metrics export
	Prometheus PrometheusConfig `yaml:"prometheus"`
}

// OTLPConfig holds OTLP exporter configuration
type OTLPConfig struct {
	// Enabled enables OTLP trace export
	Enabled bool `yaml:"enabled"`
	// Endpoint is the OTLP collector endpoint (e.g., "localhost:4317")
	Endpoint string `yaml:"endpoint"`
	// Insecure disables TLS for the connection
	Insecure bool `yaml:"insecure"`
}

// PrometheusConfig holds Prometheus metrics configuration
type PrometheusConfig struct {
	// Enabled enables Prometheus metrics export
	Enabled bool `yaml:"enabled"`
	// Port is the port for the metrics HTTP server
	Port int `yaml:"port"`
}

// Telemetry owns the configured providers and the metrics HTTP server.
// Shutdown releases all of them.
type Telemetry struct {
	config        Config
	traceProvider *sdktrace.TracerProvider
	meterProvider *sdkmetric.MeterProvider
	metricsServer *http.Server
}

// New builds a Telemetry instance from the configuration and installs the
// resulting providers as the process-wide OTel defaults. A disabled config
// yields an inert instance whose Shutdown is a no-op.
func New(cfg Config) (*Telemetry, error) {
	t := &Telemetry{config: cfg}
	if !cfg.Enabled {
		logger.Debug("Telemetry disabled")
		return t, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = consts.ServiceName
		t.config.ServiceName = cfg.ServiceName
	}

	res, err := resource.New(
		context.Background(),
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create telemetry resource: %w", err)
	}

	t.traceProvider, err = newTraceProvider(cfg.OTLP, res)
	if err != nil {
		return nil, err
	}
	otel.SetTracerProvider(t.traceProvider)

	t.meterProvider, t.metricsServer, err = newMeterProvider(cfg.Prometheus, res)
	if err != nil {
		return nil, err
	}
	otel.SetMeterProvider(t.meterProvider)

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Info("Telemetry ready",
		zap.String("service_name", cfg.ServiceName),
		zap.Bool("otlp", cfg.OTLP.Enabled),
		zap.Bool("prometheus", cfg.Prometheus.Enabled),
	)

	return t, nil
}

// newTraceProvider builds a tracer provider, batching spans to OTLP when
// an endpoint is configured and dropping them otherwise.
func newTraceProvider(cfg OTLPConfig, res *resource.Resource) (*sdktrace.TracerProvider, error) {
	opts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}

	if cfg.Enabled && cfg.Endpoint != "" {
		ctx, cancel := context.WithTimeout(context.Background(), exporterDialTimeout)
		defer cancel()

		grpcOpts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.Endpoint)}
		if cfg.Insecure {
			grpcOpts = append(grpcOpts, otlptracegrpc.WithInsecure())
		}

		exporter, err := otlptracegrpc.New(ctx, grpcOpts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
		logger.Info("OTLP trace export enabled", zap.String("endpoint", cfg.Endpoint))
	}

	return sdktrace.NewTracerProvider(opts...), nil
}

// newMeterProvider builds a meter provider and, when Prometheus export is
// enabled, starts the /metrics scrape server alongside it.
func newMeterProvider(cfg PrometheusConfig, res *resource.Resource) (*sdkmetric.MeterProvider, *http.Server, error) {
	opts := []sdkmetric.Option{sdkmetric.WithResource(res)}

	var srv *http.Server
	if cfg.Enabled {
		exporter, err := prometheus.New()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create Prometheus exporter: %w", err)
		}
		opts = append(opts, sdkmetric.WithReader(exporter))

		port := cfg.Port
		if port == 0 {
			port = defaultPrometheusPort
		}

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		srv = &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      mux,
			ReadTimeout:  metricsServerTimeout,
			WriteTimeout: metricsServerTimeout,
		}

		go func() {
			logger.Info("Metrics endpoint listening", zap.Int("port", port))
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("Metrics server error", zap.Error(err))
			}
		}()
	}

	return sdkmetric.NewMeterProvider(opts...), srv, nil
}

// Shutdown flushes and releases the providers and stops the metrics server.
// Individual shutdown failures are logged, not returned, so a slow collector
// cannot block the rest of the teardown.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if !t.config.Enabled {
		return nil
	}

	if t.traceProvider != nil {
		if err := t.traceProvider.Shutdown(ctx); err != nil {
			logger.Error("Tracer provider shutdown failed", zap.Error(err))
		}
	}
	if t.meterProvider != nil {
		if err := t.meterProvider.Shutdown(ctx); err != nil {
			logger.Error("Meter provider shutdown failed", zap.Error(err))
		}
	}
	if t.metricsServer != nil {
		if err := t.metricsServer.Shutdown(ctx); err != nil {
			logger.Error("Metrics server shutdown failed", zap.Error(err))
		}
	}

	return nil
}

// IsEnabled returns whether telemetry is enabled
func (t *Telemetry) IsEnabled() bool {
	return t.config.Enabled
}
