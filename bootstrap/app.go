package bootstrap

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/turbokit/component"
	"github.com/kbukum/turbokit/config"
	"github.com/kbukum/turbokit/di"
	"github.com/kbukum/turbokit/errors"
	"github.com/kbukum/turbokit/logger"
	"github.com/kbukum/turbokit/scan"
	"github.com/kbukum/turbokit/version"
)

// App ties configuration, the container, and the scanner together. It
// registers the core components plus everything discovered in the installed
// apps, exactly once per App.
//
// Example:
//
//	cfg, err := config.Load()
//	app, err := bootstrap.New(cfg)
//	if err := app.Initialize(); err != nil {
//	    log.Fatal(err)
//	}
//	svc := di.MustResolve[*HomeService](app.Container, "apps.home.HomeService")
type App struct {
	Name      string
	Version   string
	Cfg       *config.Config
	Container *di.Container
	Scanner   *scan.Scanner
	Logger    *logger.Logger
	Summary   *Summary

	index       *component.Index
	initialized bool
}

// New creates an application from a loaded config. It applies defaults,
// validates the config, and initializes the logger.
func New(cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, errors.InvalidConfig("config is nil")
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &App{
		Name:      cfg.ProjectName,
		Version:   cfg.ProjectVersion,
		Cfg:       cfg,
		Container: di.New(),
		index:     component.Default(),
	}

	// Apply options (may override logger, container, index).
	o := resolveOptions(opts)
	if o.container != nil {
		app.Container = o.container
	}
	if o.index != nil {
		app.index = o.index
	}

	// Logger: use custom if provided, otherwise init from config.
	if o.logger != nil {
		app.Logger = o.logger
	} else {
		logger.Init(cfg.Logging)
		app.Logger = logger.GetGlobalLogger()
	}

	app.Scanner = scan.New(cfg, app.index)
	app.Summary = NewSummary(app.Name, app.Version)
	app.Summary.TrackApps(cfg.Apps())
	return app, nil
}

// NewFromFile loads the project configuration from path and creates the
// application from it.
func NewFromFile(path string, opts ...Option) (*App, error) {
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}

// Initialize registers the core components and everything the scanner
// discovers. It runs once; later calls return immediately. A registration
// conflict aborts initialization so wiring mistakes fail at startup.
func (a *App) Initialize() error {
	if a.initialized {
		return nil
	}
	start := time.Now()

	a.Logger.Info("Initializing application", logger.Fields(
		logger.FieldApp, a.Name,
		"version", a.Version,
		"build", version.Short(),
	))

	if err := a.registerCore(); err != nil {
		return err
	}

	count, err := a.registerDiscovered()
	if err != nil {
		return err
	}

	a.initialized = true
	a.Summary.SetStartupDuration(time.Since(start))

	a.Logger.Info("Application initialized", logger.Fields(
		logger.FieldCount, count,
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))
	return nil
}

// Initialized reports whether Initialize has completed.
func (a *App) Initialized() bool { return a.initialized }

// registerCore binds the configuration, the scanner, and the container
// itself under their well-known names.
func (a *App) registerCore() error {
	if err := a.Container.RegisterValue(di.Core.Config, a.Cfg); err != nil {
		return err
	}
	if err := a.Container.RegisterValue(di.Core.Scanner, a.Scanner); err != nil {
		return err
	}
	return a.Container.RegisterValue(di.Core.Container, a.Container)
}

// registerDiscovered scans the installed apps and registers every
// discovered component as a singleton under its derived name.
func (a *App) registerDiscovered() (int, error) {
	components := a.Scanner.AllComponents()

	for _, c := range components {
		name := ComponentName(c)
		if err := a.Container.Register(name, di.NewSingleton(componentFactory(c))); err != nil {
			return 0, err
		}
		a.Logger.Debug("Registered component", logger.Fields(
			logger.FieldComponent, name,
			logger.FieldKind, c.Kind.String(),
		))
	}
	return len(components), nil
}

// Component resolves a component by name, initializing the application
// first when needed.
func (a *App) Component(name string) (any, error) {
	if !a.initialized {
		if err := a.Initialize(); err != nil {
			return nil, err
		}
	}
	return a.Container.Resolve(name)
}

// ComponentTyped resolves a component by name and verifies its type,
// initializing the application first when needed.
func (a *App) ComponentTyped(name string, expected reflect.Type) (any, error) {
	if !a.initialized {
		if err := a.Initialize(); err != nil {
			return nil, err
		}
	}
	return a.Container.ResolveTyped(name, expected)
}

// DisplaySummary prints the startup summary with the container's live
// registration state.
func (a *App) DisplaySummary() {
	a.Summary.DisplaySummary(a.Container)
}

// ComponentName builds the registration name for a discovered component:
// the owning module id joined with the component name. A component without
// a module keeps its bare name; a component without either gets a generated
// placeholder. The web router resolves controllers by the same name.
func ComponentName(c *component.Component) string {
	switch {
	case c.Name != "" && c.ModuleID() != "":
		return c.ModuleID() + "." + c.Name
	case c.Name != "":
		return c.Name
	default:
		return "component_" + uuid.NewString()[:8]
	}
}

// componentFactory adapts a discovered component into a container factory.
// Classes construct an instance through their constructor; function
// components are invoked. Both must be callable without arguments, wiring
// with dependencies belongs in factories that close over the container.
func componentFactory(c *component.Component) di.Factory {
	value := c.Value
	name := c.Name
	return func() (any, error) {
		fn := reflect.ValueOf(value)
		if fn.Kind() != reflect.Func {
			return nil, fmt.Errorf("component %s is %T, not callable", name, value)
		}
		if fn.Type().NumIn() > 0 {
			return nil, fmt.Errorf(
				"component %s requires %d arguments; discovered components must be constructible without any",
				name, fn.Type().NumIn())
		}
		return callResults(fn.Call(nil))
	}
}

// callResults interprets a constructor's return values: the instance,
// optionally followed by an error.
func callResults(results []reflect.Value) (any, error) {
	switch len(results) {
	case 0:
		return nil, nil
	case 1:
		return results[0].Interface(), nil
	case 2:
		instance := results[0].Interface()
		if errVal := results[1].Interface(); errVal != nil {
			return nil, errVal.(error)
		}
		return instance, nil
	default:
		return nil, fmt.Errorf("constructor must return the instance, optionally with an error")
	}
}
