package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/turbokit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName identifies the metered service, usually the project name.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "0.1.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider and installs it
// globally. Returns a MeterProvider that should be shut down on
// application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(newResource(config.ServiceName, config.ServiceVersion, config.Environment)),
	)

	otel.SetMeterProvider(mp)

	logger.Get("observability").Info("Meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the metric instruments for the framework's units of work:
// container resolutions, app scans, and task runs.
type Metrics struct {
	resolutionTotal    metric.Int64Counter
	resolutionDuration metric.Float64Histogram
	scanTotal          metric.Int64Counter
	taskTotal          metric.Int64Counter
	taskDuration       metric.Float64Histogram
	taskActive         metric.Int64UpDownCounter
	errorTotal         metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	resolutionTotal, err := meter.Int64Counter("component.resolution.total",
		metric.WithDescription("Total number of component resolutions"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating component.resolution.total counter: %w", err)
	}

	resolutionDuration, err := meter.Float64Histogram("component.resolution.duration",
		metric.WithDescription("Duration of component resolutions in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating component.resolution.duration histogram: %w", err)
	}

	scanTotal, err := meter.Int64Counter("scan.components.total",
		metric.WithDescription("Total components discovered per scanned module"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating scan.components.total counter: %w", err)
	}

	taskTotal, err := meter.Int64Counter("task.run.total",
		metric.WithDescription("Total number of task runs"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating task.run.total counter: %w", err)
	}

	taskDuration, err := meter.Float64Histogram("task.run.duration",
		metric.WithDescription("Duration of task runs in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating task.run.duration histogram: %w", err)
	}

	taskActive, err := meter.Int64UpDownCounter("task.run.active",
		metric.WithDescription("Number of currently running tasks"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating task.run.active gauge: %w", err)
	}

	errorTotal, err := meter.Int64Counter("error.total",
		metric.WithDescription("Total errors by code and component"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating error.total counter: %w", err)
	}

	return &Metrics{
		resolutionTotal:    resolutionTotal,
		resolutionDuration: resolutionDuration,
		scanTotal:          scanTotal,
		taskTotal:          taskTotal,
		taskDuration:       taskDuration,
		taskActive:         taskActive,
		errorTotal:         errorTotal,
	}, nil
}

// RecordResolution records one container resolution.
func (m *Metrics) RecordResolution(ctx context.Context, component, lifetime, status string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("component", component),
		attribute.String("lifetime", lifetime),
		attribute.String("status", status),
	)
	m.resolutionTotal.Add(ctx, 1, attrs)
	m.resolutionDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("component", component),
		attribute.String("lifetime", lifetime),
	))
}

// RecordScan records the component count discovered in one module.
func (m *Metrics) RecordScan(ctx context.Context, module string, count int) {
	m.scanTotal.Add(ctx, int64(count), metric.WithAttributes(
		attribute.String("module", module),
	))
}

// RecordTaskStart increments the active task count.
func (m *Metrics) RecordTaskStart(ctx context.Context) {
	m.taskActive.Add(ctx, 1)
}

// RecordTaskEnd decrements active tasks and records the completed run.
func (m *Metrics) RecordTaskEnd(ctx context.Context, task, module, status string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("task", task),
		attribute.String("module", module),
		attribute.String("status", status),
	)
	m.taskActive.Add(ctx, -1)
	m.taskTotal.Add(ctx, 1, attrs)
	m.taskDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("task", task),
		attribute.String("module", module),
	))
}

// RecordError records an error by code and component.
func (m *Metrics) RecordError(ctx context.Context, code, component string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("code", code),
		attribute.String("component", component),
	))
}
