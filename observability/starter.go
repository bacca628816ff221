package observability

import (
	"context"
	"fmt"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/kbukum/turbokit/di"
	"github.com/kbukum/turbokit/logger"
)

const defaultMeterName = "github.com/kbukum/turbokit/observability"

// StarterOption tunes which subsystems a Starter configures.
type StarterOption func(*Starter)

// WithoutTracing skips tracer initialization and registration.
func WithoutTracing() StarterOption {
	return func(s *Starter) { s.tracing = false }
}

// WithoutMetrics skips meter initialization and registration.
func WithoutMetrics() StarterOption {
	return func(s *Starter) { s.metrics = false }
}

// WithoutHealth skips health checker registration.
func WithoutHealth() StarterOption {
	return func(s *Starter) { s.health = false }
}

// Starter wires tracing, metrics, and health reporting into a container.
// Configure initializes each enabled subsystem once and registers it under
// the well-known names tracer, meter, metrics, and health; a second
// Configure returns immediately.
type Starter struct {
	container *di.Container
	service   string
	version   string
	cfg       Config
	log       *logger.Logger

	tracing bool
	metrics bool
	health  bool

	configured bool
	tp         *sdktrace.TracerProvider
	mp         *sdkmetric.MeterProvider
}

// NewStarter creates a starter for the given container and project
// identity. All subsystems are enabled unless disabled by options.
func NewStarter(container *di.Container, service, version string, cfg Config, opts ...StarterOption) *Starter {
	cfg.ApplyDefaults()
	s := &Starter{
		container: container,
		service:   service,
		version:   version,
		cfg:       cfg,
		log:       logger.Get("observability"),
		tracing:   true,
		metrics:   true,
		health:    true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Configure initializes the enabled subsystems and registers them in the
// container. A name conflict or exporter failure aborts configuration so
// wiring mistakes fail at startup.
func (s *Starter) Configure(ctx context.Context) error {
	if s.configured {
		return nil
	}
	if err := s.cfg.Validate(); err != nil {
		return fmt.Errorf("observability config: %w", err)
	}

	if s.tracing {
		if err := s.configureTracing(ctx); err != nil {
			return err
		}
	}
	if s.metrics {
		if err := s.configureMetrics(ctx); err != nil {
			return err
		}
	}
	if s.health {
		if err := s.container.RegisterValue(di.Core.Health, NewServiceHealth(s.service, s.version)); err != nil {
			return err
		}
	}

	s.configured = true
	s.log.Info("Observability configured", logger.Fields(
		"service", s.service,
		"tracing", s.tracing,
		"metrics", s.metrics,
	))
	return nil
}

// Configured reports whether Configure has completed.
func (s *Starter) Configured() bool { return s.configured }

func (s *Starter) configureTracing(ctx context.Context) error {
	tc := s.cfg.TracerConfigFor(s.service, s.version)
	tp, err := InitTracer(ctx, &tc)
	if err != nil {
		return fmt.Errorf("configuring tracing: %w", err)
	}
	s.tp = tp
	return s.container.RegisterValue(di.Core.Tracer, tp)
}

func (s *Starter) configureMetrics(ctx context.Context) error {
	mc := s.cfg.MeterConfigFor(s.service, s.version)
	mp, err := InitMeter(ctx, &mc)
	if err != nil {
		return fmt.Errorf("configuring metrics: %w", err)
	}
	s.mp = mp
	if err := s.container.RegisterValue(di.Core.Meter, mp); err != nil {
		return err
	}

	instruments, err := NewMetrics(mp.Meter(defaultMeterName))
	if err != nil {
		return fmt.Errorf("creating metric instruments: %w", err)
	}
	return s.container.RegisterValue(di.Core.Metrics, instruments)
}

// Shutdown flushes and stops the providers Configure created.
func (s *Starter) Shutdown(ctx context.Context) error {
	if s.tp != nil {
		if err := s.tp.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutting down tracer provider: %w", err)
		}
		s.tp = nil
	}
	if s.mp != nil {
		if err := s.mp.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutting down meter provider: %w", err)
		}
		s.mp = nil
	}
	return nil
}
