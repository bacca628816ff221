package config

import (
	"fmt"

	"github.com/kbukum/turbokit/logger"
	"github.com/kbukum/turbokit/observability"
	"github.com/kbukum/turbokit/validation"
)

// Config is the project configuration consumed by the scanner and bootstrap.
type Config struct {
	// ProjectName is the project name from the [project] section.
	ProjectName string `validate:"required"`
	// ProjectVersion is the project version from the [project] section.
	ProjectVersion string
	// InstalledApps is the ordered list of module identifiers to scan,
	// from the [turbo] section. Each entry must be a non-empty string;
	// no further validation is applied here.
	InstalledApps []string `validate:"dive,required"`
	// Logging configures the global logger, from the [turbo.logging] section.
	Logging logger.Config
	// Observability configures the OTLP exporters, from the
	// [turbo.observability] section.
	Observability observability.Config
}

// New creates a Config with the given project identity and installed apps.
func New(name, version string, apps ...string) *Config {
	cfg := &Config{
		ProjectName:    name,
		ProjectVersion: version,
		InstalledApps:  apps,
	}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	if c.ProjectVersion == "" {
		c.ProjectVersion = "0.1.0"
	}
	c.Logging.ApplyDefaults()
	c.Observability.ApplyDefaults()
}

// Validate validates the configuration fields.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("turbo.logging: %w", err)
	}
	if err := c.Observability.Validate(); err != nil {
		return fmt.Errorf("turbo.observability: %w", err)
	}
	return nil
}

// Apps returns a copy of the installed app identifiers.
func (c *Config) Apps() []string {
	apps := make([]string, len(c.InstalledApps))
	copy(apps, c.InstalledApps)
	return apps
}
