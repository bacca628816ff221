package bootstrap

import (
	"github.com/kbukum/turbokit/component"
	"github.com/kbukum/turbokit/di"
	"github.com/kbukum/turbokit/logger"
)

// Option configures the App during creation.
type Option func(*appOptions)

// appOptions collects all option values before applying to App.
type appOptions struct {
	logger    *logger.Logger
	container *di.Container
	index     *component.Index
}

// resolveOptions applies all options and returns the collected values.
func resolveOptions(opts []Option) *appOptions {
	o := &appOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets a custom logger for the application.
// If not set, the logger is auto-initialized from the config's Logging field.
func WithLogger(l *logger.Logger) Option {
	return func(o *appOptions) {
		o.logger = l
	}
}

// WithContainer sets a custom DI container for the application.
func WithContainer(c *di.Container) Option {
	return func(o *appOptions) {
		o.container = c
	}
}

// WithIndex sets the module index to scan. If not set, the application
// scans the process-wide default index that component.Register feeds.
func WithIndex(ix *component.Index) Option {
	return func(o *appOptions) {
		o.index = ix
	}
}
