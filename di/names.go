package di

// CoreNames defines the component names the bootstrap layer registers for
// every application. Projects embed this struct in their own shared DI
// names so infrastructure and application components share one namespace.
type CoreNames struct {
	Config    string
	Scanner   string
	Container string

	// Observability
	Tracer  string
	Meter   string
	Metrics string
	Health  string
}

// Core contains the well-known component names for the bootstrap layer.
var Core = CoreNames{
	Config:    "config",
	Scanner:   "scanner",
	Container: "container",

	Tracer:  "tracer",
	Meter:   "meter",
	Metrics: "metrics",
	Health:  "health",
}
