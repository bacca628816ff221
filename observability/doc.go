// Package observability initializes OpenTelemetry tracing and metrics and
// registers them as container components.
//
// The Starter follows the same pattern as the bootstrap layer: create it
// with the project identity, configure once, shut down on exit:
//
//	starter := observability.NewStarter(app.Container, app.Name, app.Version, cfg.Observability)
//	if err := starter.Configure(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer starter.Shutdown(ctx)
//
//	tp := di.MustResolve[*sdktrace.TracerProvider](app.Container, di.Core.Tracer)
//
// Both providers export over OTLP HTTP. Individual subsystems can be
// skipped with WithoutTracing, WithoutMetrics, and WithoutHealth.
package observability
