// Package bootstrap turns a declarative project layout into a live object
// graph.
//
// It loads the project configuration, scans the installed apps for
// components, and registers everything into a DI container: the config,
// scanner, and container under their well-known names, then each discovered
// component as a singleton named after its module and declaration.
//
// # Quick Start
//
//	app, err := bootstrap.NewFromFile("turbo.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := app.Initialize(); err != nil {
//	    log.Fatal(err)
//	}
//	svc := di.MustResolve[*HomeService](app.Container, "apps.home.HomeService")
//
// Initialize runs once per App; duplicate registrations abort startup so
// wiring mistakes surface immediately.
package bootstrap
